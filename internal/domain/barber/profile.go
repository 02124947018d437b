package barber

import (
	"strings"

	"github.com/BruksfildServices01/barber-schedule/internal/httperr"
	"github.com/BruksfildServices01/barber-schedule/internal/models"
)

var (
	ErrEmptyPatch      = httperr.New("empty_patch", "Nenhum campo para atualizar.")
	ErrInvalidContact  = httperr.New("invalid_contact", "Número de telefone inválido.")
	ErrInvalidName     = httperr.New("invalid_name", "Nome e sobrenome são obrigatórios.")
	ErrSameNames       = httperr.New("same_names", "O primeiro e o último nome não podem ser iguais!")
	ErrDisplayNameUsed = httperr.New("display_name_taken", "Já existe um barbeiro com esse nome.")
)

const maxPhoneLen = 20

// ProfilePatch is one kind of change to a barber's profile. Apply validates
// and mutates b (and its User) in memory; persistence is the caller's job.
type ProfilePatch interface {
	Apply(b *models.Barber) error
	Kind() string
}

// ContactPatch changes the barber's own phone number.
type ContactPatch struct {
	Phone string
}

func (p ContactPatch) Kind() string { return "contact" }

func (p ContactPatch) Apply(b *models.Barber) error {
	phone := strings.TrimSpace(p.Phone)
	if phone == "" || len(phone) > maxPhoneLen {
		return ErrInvalidContact
	}
	b.PhoneNumber = phone
	return nil
}

// AccountPatch changes the account names. FirstName is the public display
// name clients book against.
type AccountPatch struct {
	FirstName *string
	LastName  *string
}

func (p AccountPatch) Kind() string { return "account" }

func (p AccountPatch) Apply(b *models.Barber) error {
	first := b.User.FirstName
	last := b.User.LastName

	if p.FirstName != nil {
		first = strings.TrimSpace(*p.FirstName)
	}
	if p.LastName != nil {
		last = strings.TrimSpace(*p.LastName)
	}

	if first == "" || last == "" {
		return ErrInvalidName
	}
	if first == last {
		return ErrSameNames
	}

	b.User.FirstName = first
	b.User.LastName = last
	return nil
}

// PatchRequest is the wire shape of a profile update.
type PatchRequest struct {
	PhoneNumber *string `json:"phone_number"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
}

// Patches splits a request into its variants, contact first.
func (r PatchRequest) Patches() ([]ProfilePatch, error) {
	var out []ProfilePatch

	if r.PhoneNumber != nil {
		out = append(out, ContactPatch{Phone: *r.PhoneNumber})
	}
	if r.FirstName != nil || r.LastName != nil {
		out = append(out, AccountPatch{FirstName: r.FirstName, LastName: r.LastName})
	}

	if len(out) == 0 {
		return nil, ErrEmptyPatch
	}
	return out, nil
}

// ApplyAll applies every patch in order and stops at the first failure.
func ApplyAll(b *models.Barber, patches []ProfilePatch) error {
	for _, p := range patches {
		if err := p.Apply(b); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRegistration checks the account rules that registration shares
// with AccountPatch.
func ValidateRegistration(username, firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return ErrInvalidName
	}
	if firstName == lastName {
		return ErrSameNames
	}
	if username == firstName && username == lastName {
		return ErrSameNames
	}
	return nil
}
