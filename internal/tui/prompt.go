package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/sadopc/hours/internal/hours"
)

// MaxTarget is the largest accepted hour goal.
const MaxTarget = 255

var errTargetRange = fmt.Errorf("target must be a whole number between 1 and %d", MaxTarget)

// ParseTarget reads one target field. Blank input means no target.
func ParseTarget(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > MaxTarget {
		return nil, errTargetRange
	}
	return &n, nil
}

func validateTarget(s string) error {
	_, err := ParseTarget(s)
	return err
}

// targetFields holds the raw form values for one project.
type targetFields struct {
	daily   *string
	weekly  *string
	monthly *string
}

func newTargetFields(cfg hours.TargetConfig) targetFields {
	d, w, m := targetText(cfg.Daily), targetText(cfg.Weekly), targetText(cfg.Monthly)
	return targetFields{daily: &d, weekly: &w, monthly: &m}
}

func targetText(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func (f targetFields) group(title string) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().Title("Daily target (hours)").Placeholder("blank for none").
			Validate(validateTarget).Value(f.daily),
		huh.NewInput().Title("Weekly target (hours)").Placeholder("blank for none").
			Validate(validateTarget).Value(f.weekly),
		huh.NewInput().Title("Monthly target (hours)").Placeholder("blank for none").
			Validate(validateTarget).Value(f.monthly),
	).Title(title)
}

func (f targetFields) config() (hours.TargetConfig, error) {
	var cfg hours.TargetConfig
	var err error
	if cfg.Daily, err = ParseTarget(*f.daily); err != nil {
		return cfg, err
	}
	if cfg.Weekly, err = ParseTarget(*f.weekly); err != nil {
		return cfg, err
	}
	if cfg.Monthly, err = ParseTarget(*f.monthly); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// PromptTargets asks for the targets of every pending project, one page per
// project. Projects left blank get an empty configuration so they are not
// asked about again.
func PromptTargets(pending []hours.Pending) (map[hours.ProjectKey]hours.TargetConfig, error) {
	if len(pending) == 0 {
		return nil, nil
	}

	fields := make([]targetFields, len(pending))
	groups := make([]*huh.Group, len(pending))
	for i, p := range pending {
		fields[i] = newTargetFields(hours.TargetConfig{})
		groups[i] = fields[i].group(p.Title)
	}

	if err := huh.NewForm(groups...).WithShowHelp(true).WithShowErrors(true).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	out := make(map[hours.ProjectKey]hours.TargetConfig, len(pending))
	for i, p := range pending {
		cfg, err := fields[i].config()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Title, err)
		}
		out[p.Key] = cfg
	}
	return out, nil
}

// PromptToggl asks for a Toggl API token.
func PromptToggl() (string, error) {
	var token string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Toggl API token").
				Description("Found under Profile settings on track.toggl.com").
				EchoMode(huh.EchoModePassword).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("token is required")
					}
					return nil
				}).
				Value(&token),
		),
	).Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(token), nil
}
