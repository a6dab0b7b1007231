package app

// Confirmer asks the user a yes/no question before a destructive action.
type Confirmer interface {
	Confirm(message string) bool
}

// Prompter collects a secret from the user. ok is false when the prompt was
// cancelled, which is distinct from entering a wrong secret.
type Prompter interface {
	PromptSecret(message string) (secret string, ok bool)
}

// AcceptAll confirms every question. The HTTP transport wires it because
// the client asks for confirmation on its side before calling in.
type AcceptAll struct{}

func (AcceptAll) Confirm(string) bool { return true }

// StaticSecret replays an already-collected secret, for transports that
// receive the password in the request instead of prompting.
type StaticSecret string

func (s StaticSecret) PromptSecret(string) (string, bool) {
	return string(s), true
}
