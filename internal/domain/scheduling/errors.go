package scheduling

import "github.com/BruksfildServices01/barber-schedule/internal/httperr"

var (
	ErrPastDate           = httperr.New("past_date", "O agendamento não pode ser realizado no passado!")
	ErrClosedDay          = httperr.New("closed_day", "Infelizmente o barbeiro não trabalha aos domingos!")
	ErrHoliday            = httperr.New("holiday", "Infelizmente agendamentos não podem ser realizados em feriados!")
	ErrOutsideHours       = httperr.New("outside_working_hours", "Fora do horário de atendimento.")
	ErrSlotTaken          = httperr.New("slot_taken", "Infelizmente o horário selecionado está indisponível!")
	ErrInvalidClientName  = httperr.New("invalid_client_name", "O cliente precisa ter nome e sobrenome, com 6 ou mais caracteres!")
	ErrInvalidPhone       = httperr.New("invalid_phone", "Número de telefone inválido.")
	ErrInvalidWorkType    = httperr.New("invalid_work_type", "Tipo de trabalho inexistente, por favor selecione uma opção válida.")
	ErrDuplicateBooking   = httperr.New("duplicate_booking", "O(A) cliente não pode ter duas reservas no mesmo dia!")
	ErrTargetNotFound     = httperr.New("confirmation_target_not_found", "O horário não pode ser confirmado!")
	ErrProviderNotFound   = httperr.New("provider_not_found", "Barbeiro não existe!")
	ErrSchedulingNotFound = httperr.New("scheduling_not_found", "Agendamento não encontrado.")
	ErrInvalidState       = httperr.New("invalid_state", "Transição de estado inválida.")
	ErrInvalidDateTime    = httperr.New("invalid_date_time", "Data ou hora inválida.")
	ErrNotStarted         = httperr.New("appointment_not_started", "O atendimento ainda não começou.")
)
