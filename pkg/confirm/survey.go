package confirm

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted reports that the user interrupted the prompt.
var ErrAborted = errors.New("confirm: prompt aborted")

// Terminal asks on the controlling terminal using survey. It is the
// interactive counterpart of the browser's blocking confirm dialog.
type Terminal struct{}

func (Terminal) Confirm(ctx context.Context, prompt Prompt) (bool, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return false, err
		}
	}
	var out bool
	q := &survey.Confirm{
		Message: prompt.Message,
		Default: prompt.Default,
		Help:    prompt.Help,
	}
	if err := survey.AskOne(q, &out); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
