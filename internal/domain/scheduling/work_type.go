package scheduling

import "strings"

type WorkType struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// WorkTypeUnset is the column default for rows created outside the API. It
// has a label but is never accepted as input.
const WorkTypeUnset = "ND"

var workTypes = []WorkType{
	{Code: "CT", Label: "Corte"},
	{Code: "BB", Label: "Barba"},
	{Code: "PT", Label: "Pintura"},
	{Code: "CB", Label: "Corte e Barba"},
	{Code: "CP", Label: "Corte e Pintura"},
	{Code: "BP", Label: "Barba e Pintura"},
}

func WorkTypes() []WorkType {
	out := make([]WorkType, len(workTypes))
	copy(out, workTypes)
	return out
}

// WorkTypeCode maps a service label to its stored code.
func WorkTypeCode(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", ErrInvalidWorkType
	}
	for _, wt := range workTypes {
		if wt.Label == label {
			return wt.Code, nil
		}
	}
	return "", ErrInvalidWorkType
}

func WorkTypeLabel(code string) string {
	if code == WorkTypeUnset {
		return "Selecionar"
	}
	for _, wt := range workTypes {
		if wt.Code == code {
			return wt.Label
		}
	}
	return code
}
