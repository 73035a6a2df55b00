package views

// ToastKind selects the toast style.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a transient notification. It is also the payload of the
// "toast" client event and of the contact flash cookie.
type Toast struct {
	Kind        ToastKind `json:"kind"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
}

// role lets screen readers interrupt for errors only.
func (t Toast) role() string {
	if t.Kind == ToastError {
		return "alert"
	}
	return "status"
}
