package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/haythamstudio/intake/internal/cli/formatter"
	"github.com/haythamstudio/intake/internal/domain"
	"github.com/haythamstudio/intake/internal/wizard"
)

// wizardSession drives one interactive inquiry from first step to
// submission. Step sequencing and validation live in the wizard package;
// this type only renders prompts and feeds answers back in.
type wizardSession struct {
	app   *App
	form  *wizard.Form
	ctrl  *wizard.Controller
	draft *domain.Draft

	tenantID string
	token    string
}

func newWizardSession(app *App, form *wizard.Form, draft *domain.Draft, tenantID, token string) *wizardSession {
	return &wizardSession{
		app:      app,
		form:     form,
		ctrl:     wizard.NewController(form),
		draft:    draft,
		tenantID: tenantID,
		token:    token,
	}
}

// Run loops over the wizard steps until the inquiry is submitted or the
// draft is saved for later. The draft is also autosaved after every step
// so an interrupted session loses at most the step in progress.
func (s *wizardSession) Run(ctx context.Context) error {
	for {
		fmt.Print(formatter.RenderStepHeader(s.ctrl.Labels(), s.ctrl.Current()))
		if msgs := s.form.Errors().Messages(); len(msgs) > 0 {
			fmt.Print(formatter.ErrorList(msgs))
		}

		var err error
		switch s.ctrl.Role() {
		case wizard.RoleContact:
			err = s.runContactStep()
		case wizard.RoleProject:
			err = s.runProjectStep()
		case wizard.RoleEvents:
			err = s.runEventsStep()
		case wizard.RoleDeliverables:
			err = s.runDeliverablesStep()
		case wizard.RoleReview:
			done, reviewErr := s.runReviewStep(ctx)
			if reviewErr != nil {
				return reviewErr
			}
			if done {
				return nil
			}
		}
		if err != nil {
			return err
		}

		s.autosave(ctx)
	}
}

func (s *wizardSession) runContactStep() error {
	state := s.form.State()
	primary := state.Primary
	secondary := state.Secondary
	askSecondary := !secondary.Blank()

	if err := contactForm(s.form.Catalog(), &primary, &secondary, &askSecondary).Run(); err != nil {
		return err
	}

	s.form.SetPrimaryContact(primary)
	if askSecondary {
		s.form.SetSecondaryContact(secondary)
	} else {
		s.form.SetSecondaryContact(domain.ContactInfo{})
	}
	s.ctrl.Advance()
	return nil
}

func (s *wizardSession) runProjectStep() error {
	state := s.form.State()
	title := state.ProjectTitle
	typeKey := state.ProjectType
	guests := state.EstimatedGuestCount
	budgetLabel := state.BudgetLabel

	if err := projectForm(s.form.Catalog(), &title, &typeKey, &guests, &budgetLabel).Run(); err != nil {
		return err
	}

	s.form.SetProjectTitle(title)
	s.form.SelectProjectType(typeKey)
	s.form.SetGuestCount(guests)
	s.form.SelectBudget(budgetLabel)
	s.ctrl.Advance()
	return nil
}

// runEventsStep loops the event collection menu until the guest continues
// or goes back. Selecting an event opens its detail editor.
func (s *wizardSession) runEventsStep() error {
	multiEvent := s.form.Catalog().SupportsMultipleEvents(s.form.State().ProjectType)
	for {
		var choice string
		if err := eventMenuForm(s.form.State(), s.form.Catalog(), multiEvent, &choice).Run(); err != nil {
			return err
		}

		switch {
		case choice == actionContinue:
			s.ctrl.Advance()
			return nil
		case choice == actionBack:
			s.ctrl.Retreat()
			return nil
		case choice == actionAdd:
			s.form.AddEvent()
		case strings.HasPrefix(choice, "remove:"):
			s.form.RemoveEvent(strings.TrimPrefix(choice, "remove:"))
		case strings.HasPrefix(choice, "edit:"):
			if err := s.editEvent(strings.TrimPrefix(choice, "edit:")); err != nil {
				return err
			}
		}
	}
}

// editEvent runs the detail form for one event, then its location and
// service editors.
func (s *wizardSession) editEvent(eventID string) error {
	state := s.form.State()
	idx := state.EventIndex(eventID)
	if idx < 0 {
		return nil
	}
	evt := state.Events[idx]

	typeKey := evt.EventType
	date := evt.Date
	start := evt.TimeStart
	end := evt.TimeEnd
	if err := eventDetailForm(s.form.Catalog(), &typeKey, &date, &start, &end).Run(); err != nil {
		return err
	}
	s.form.UpdateEvent(eventID, wizard.FieldEventType, typeKey)
	s.form.UpdateEvent(eventID, wizard.FieldDate, date)
	s.form.UpdateEvent(eventID, wizard.FieldTimeStart, start)
	s.form.UpdateEvent(eventID, wizard.FieldTimeEnd, end)

	if err := s.editLocations(eventID); err != nil {
		return err
	}
	return s.editServices(eventID)
}

func (s *wizardSession) currentEvent(eventID string) (domain.Event, bool) {
	state := s.form.State()
	idx := state.EventIndex(eventID)
	if idx < 0 {
		return domain.Event{}, false
	}
	return state.Events[idx], true
}

func (s *wizardSession) editLocations(eventID string) error {
	for {
		evt, ok := s.currentEvent(eventID)
		if !ok {
			return nil
		}

		var choice string
		if err := locationMenuForm(evt, &choice).Run(); err != nil {
			return err
		}

		switch {
		case choice == actionContinue:
			return nil
		case choice == actionAdd:
			s.form.AddLocation(eventID)
		case strings.HasPrefix(choice, "remove:"):
			s.form.RemoveLocation(eventID, strings.TrimPrefix(choice, "remove:"))
		case strings.HasPrefix(choice, "edit:"):
			locationID := strings.TrimPrefix(choice, "edit:")
			if err := s.editLocation(eventID, locationID); err != nil {
				return err
			}
		}
	}
}

func (s *wizardSession) editLocation(eventID, locationID string) error {
	evt, ok := s.currentEvent(eventID)
	if !ok {
		return nil
	}
	var loc domain.Location
	for _, l := range evt.Locations {
		if l.ID == locationID {
			loc = l
			break
		}
	}

	name := loc.Name
	address := loc.Address
	locType := loc.LocationType
	activity := loc.Activity
	if err := locationForm(s.form.Catalog(), &name, &address, &locType, &activity).Run(); err != nil {
		return err
	}

	s.form.UpdateLocation(eventID, locationID, wizard.FieldName, name)
	s.form.UpdateLocation(eventID, locationID, wizard.FieldAddress, address)
	s.form.UpdateLocation(eventID, locationID, wizard.FieldLocationType, locType)
	s.form.UpdateLocation(eventID, locationID, wizard.FieldActivity, activity)
	return nil
}

func (s *wizardSession) editServices(eventID string) error {
	for {
		evt, ok := s.currentEvent(eventID)
		if !ok {
			return nil
		}

		var choice string
		if err := serviceMenuForm(evt, s.form.Catalog(), &choice).Run(); err != nil {
			return err
		}

		switch {
		case choice == actionContinue:
			return nil
		case choice == actionAdd:
			s.form.AddService(eventID)
		case strings.HasPrefix(choice, "remove:"):
			s.form.RemoveService(eventID, strings.TrimPrefix(choice, "remove:"))
		case strings.HasPrefix(choice, "edit:"):
			serviceID := strings.TrimPrefix(choice, "edit:")
			if err := s.editServiceLine(eventID, serviceID); err != nil {
				return err
			}
		}
	}
}

func (s *wizardSession) editServiceLine(eventID, serviceID string) error {
	evt, ok := s.currentEvent(eventID)
	if !ok {
		return nil
	}
	var line domain.ServiceLine
	for _, sl := range evt.Services {
		if sl.ID == serviceID {
			line = sl
			break
		}
	}

	serviceKey := line.ServiceKey
	quantity := strconv.Itoa(line.Quantity)
	notes := line.Notes
	if err := serviceLineForm(s.form.Catalog(), &serviceKey, &quantity, &notes).Run(); err != nil {
		return err
	}

	s.form.UpdateService(eventID, serviceID, wizard.FieldServiceKey, serviceKey)
	s.form.UpdateService(eventID, serviceID, wizard.FieldQuantity, quantity)
	s.form.UpdateService(eventID, serviceID, wizard.FieldNotes, notes)
	return nil
}

func (s *wizardSession) runDeliverablesStep() error {
	state := s.form.State()
	method := state.DeliveryMethod
	photobook := state.PhotobookRequired
	copies := strconv.Itoa(state.PhotobookCopies)
	notes := state.AdditionalNotes
	videoKeys := make([]string, 0, len(state.VideoOutputs))
	for _, vo := range state.VideoOutputs {
		videoKeys = append(videoKeys, vo.Key)
	}

	if err := deliverablesForm(s.form.Catalog(), &method, &photobook, &copies, &videoKeys).Run(); err != nil {
		return err
	}
	if err := notesForm(&notes).Run(); err != nil {
		return err
	}

	s.form.SetDeliveryMethod(method)
	copyCount, err := strconv.Atoi(copies)
	if err != nil || copyCount < 1 {
		copyCount = 1
	}
	s.form.SetPhotobook(photobook, copyCount)
	s.form.SetVideoOutputKeys(videoKeys)
	s.form.SetAdditionalNotes(notes)
	s.ctrl.Advance()
	return nil
}

// runReviewStep shows the summary and the submit menu. It returns
// done=true when the session is over, whether by submission or by an
// explicit save-and-exit.
func (s *wizardSession) runReviewStep(ctx context.Context) (bool, error) {
	fmt.Println(formatter.RenderReview(s.form.State(), s.form.Catalog()))

	var choice string
	if err := reviewForm(&choice).Run(); err != nil {
		return false, err
	}

	switch choice {
	case reviewBack:
		s.ctrl.Retreat()
		return false, nil
	case reviewSave:
		s.autosave(ctx)
		if s.draft != nil && s.draft.ID != "" {
			fmt.Println(formatter.Success("Draft saved. Resume with: intake start --resume " + s.draft.DisplayID()))
		}
		return true, nil
	default:
		return s.submit(ctx)
	}
}

// submit runs the submission program and reports the outcome. A consumed
// link ends the session; any other failure returns to the review step so
// the guest can retry or save.
func (s *wizardSession) submit(ctx context.Context) (bool, error) {
	result := runSubmit(ctx, s.app.Inquiries, s.form.State(), s.form.Catalog(), s.tenantID, s.token)
	if result.err != nil {
		fmt.Println(formatter.ErrorList([]string{result.err.Error()}))
		return false, nil
	}
	if result.alreadyUsed {
		fmt.Println(formatter.Warn("This booking link has already been used. Nothing was sent."))
		s.discardDraft(ctx)
		return true, nil
	}

	fmt.Println(formatter.Success("Inquiry submitted. The studio will be in touch soon!"))
	s.discardDraft(ctx)
	return true, nil
}

// autosave persists the current form state; failures are reported but
// never interrupt the session.
func (s *wizardSession) autosave(ctx context.Context) {
	if s.draft == nil {
		return
	}
	s.draft.State = s.form.State()
	saved, err := s.app.Drafts.Save(ctx, s.draft)
	if err != nil {
		fmt.Println(formatter.Warn("draft autosave failed: " + err.Error()))
		return
	}
	s.draft = saved
}

func (s *wizardSession) discardDraft(ctx context.Context) {
	if s.draft == nil || s.draft.ID == "" {
		return
	}
	if err := s.app.Drafts.Delete(ctx, s.draft.ID); err != nil {
		fmt.Println(formatter.Warn("could not remove draft: " + err.Error()))
	}
}
