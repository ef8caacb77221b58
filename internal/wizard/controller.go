package wizard

// Controller tracks wizard progress for a form. The step index is always
// within [1, TotalSteps]; advancing past a step requires the step's
// validator to pass, while retreating never validates.
type Controller struct {
	form    *Form
	current int
}

// NewController starts a controller at step 1.
func NewController(form *Form) *Controller {
	return &Controller{form: form, current: 1}
}

// Current returns the 1-based step index.
func (c *Controller) Current() int { return c.current }

func (c *Controller) multiEvent() bool {
	return c.form.Catalog().SupportsMultipleEvents(c.form.State().ProjectType)
}

// TotalSteps returns the step count for the currently selected project
// type: 5 when it supports multiple events, 4 otherwise.
func (c *Controller) TotalSteps() int {
	return StepCount(c.multiEvent())
}

// Labels returns the ordered progress labels for the current sequence.
func (c *Controller) Labels() []string {
	return StepLabels(c.multiEvent())
}

// Role resolves the semantic role of the current step.
func (c *Controller) Role() Role {
	return RoleAt(c.multiEvent(), c.current)
}

// AtReview reports whether the wizard sits on the final review step.
func (c *Controller) AtReview() bool {
	return c.Role() == RoleReview
}

// Advance validates the current step. On failure the full error map is
// recorded on the form and the step stays put; repeated calls against
// unchanged state keep producing the same errors. On success prior
// errors are cleared and the step increments, capped at TotalSteps.
func (c *Controller) Advance() bool {
	errs := Validate(c.Role(), c.form.State(), c.form.Catalog())
	if !errs.Empty() {
		c.form.errors = errs
		return false
	}
	c.form.errors = ErrorMap{}
	if c.current < c.TotalSteps() {
		c.current++
	}
	return true
}

// Retreat clears errors and decrements the step, floored at 1. No
// validation runs on the way back.
func (c *Controller) Retreat() {
	c.form.errors = ErrorMap{}
	if c.current > 1 {
		c.current--
	}
}
