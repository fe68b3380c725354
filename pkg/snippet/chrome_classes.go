package snippet

// ChromeClass is a typed identifier for the CSS class names the runtime
// script touches.
type ChromeClass string

const (
	ClassAlert     ChromeClass = "alert"
	ClassValidated ChromeClass = "was-validated"
)

// Default*Class values apply when no override or theme token is present.
const (
	DefaultAlertSelector  = "." + string(ClassAlert)
	DefaultValidatedClass = string(ClassValidated)
)

// Theme token keys the renderer resolves against a go-theme selection.
const (
	TokenAlertClass     = "page.alert"
	TokenValidatedClass = "page.validated"
)
