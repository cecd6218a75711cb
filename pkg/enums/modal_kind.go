package enums

import "fmt"

// ModalKind identifies one of the console's modal dialogs.
type ModalKind string

const (
	ModalKindCreate        ModalKind = "create"
	ModalKindEdit          ModalKind = "edit"
	ModalKindDeleteConfirm ModalKind = "delete_confirm"
	ModalKindDetails       ModalKind = "details"
	ModalKindPassword      ModalKind = "password"
	ModalKindInvoice       ModalKind = "invoice"
)

var validModalKinds = []ModalKind{
	ModalKindCreate,
	ModalKindEdit,
	ModalKindDeleteConfirm,
	ModalKindDetails,
	ModalKindPassword,
	ModalKindInvoice,
}

// String implements fmt.Stringer.
func (m ModalKind) String() string {
	return string(m)
}

// IsValid reports whether the value is a known ModalKind.
func (m ModalKind) IsValid() bool {
	for _, candidate := range validModalKinds {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseModalKind converts raw input into a ModalKind.
func ParseModalKind(value string) (ModalKind, error) {
	for _, candidate := range validModalKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid modal kind %q", value)
}
