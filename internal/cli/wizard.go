package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/haythamstudio/intake/internal/catalog"
	"github.com/haythamstudio/intake/internal/cli/formatter"
	"github.com/haythamstudio/intake/internal/domain"
)

// intakeHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func intakeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func themedForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(intakeHuhTheme()).WithShowHelp(false)
}

// contactGroup builds the input group for one contact block. Hard
// validation stays with the step validators; the inline checks only catch
// obvious slips early.
func contactGroup(cat catalog.Catalog, label string, c *domain.ContactInfo, required bool) *huh.Group {
	roleOptions := make([]huh.Option[string], 0, len(cat.ContactRoles())+1)
	if !required {
		roleOptions = append(roleOptions, huh.NewOption("(none)", ""))
	}
	for _, role := range cat.ContactRoles() {
		roleOptions = append(roleOptions, huh.NewOption(role, role))
	}

	name := huh.NewInput().
		Title(label + " Name").
		Placeholder("Full name").
		Value(&c.Name)
	if required {
		name = name.Validate(validateRequired("name"))
	}

	return huh.NewGroup(
		name,
		huh.NewInput().
			Title("Email").
			Placeholder("you@example.com").
			Value(&c.Email),
		huh.NewInput().
			Title("Phone").
			Placeholder("+91 ...").
			Value(&c.Phone),
		huh.NewSelect[string]().
			Title("Role").
			Options(roleOptions...).
			Value(&c.Role),
	)
}

// contactForm collects the primary contact and, optionally, a secondary one.
func contactForm(cat catalog.Catalog, primary, secondary *domain.ContactInfo, askSecondary *bool) *huh.Form {
	return themedForm(
		contactGroup(cat, "Primary", primary, true),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Add a second contact?").
				Affirmative("Yes").
				Negative("No").
				Value(askSecondary),
		),
		contactGroup(cat, "Secondary", secondary, false).
			WithHideFunc(func() bool { return !*askSecondary }),
	)
}

// projectForm collects title, project type, guest count, and budget range.
func projectForm(cat catalog.Catalog, title, typeKey, guests, budgetLabel *string) *huh.Form {
	typeOptions := make([]huh.Option[string], 0, len(cat.ProjectTypes()))
	for _, pt := range cat.ProjectTypes() {
		typeOptions = append(typeOptions, huh.NewOption(pt.Label, pt.Key))
	}
	budgetOptions := []huh.Option[string]{huh.NewOption("(not sure yet)", "")}
	for _, br := range cat.BudgetRanges() {
		budgetOptions = append(budgetOptions, huh.NewOption(br.Label, br.Label))
	}

	return themedForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project Title").
				Placeholder("e.g. Meera & Arjun, Goa").
				Value(title).
				Validate(validateRequired("project title")),
			huh.NewSelect[string]().
				Title("Project Type").
				Options(typeOptions...).
				Value(typeKey),
			huh.NewInput().
				Title("Estimated Guest Count").
				Placeholder("150").
				Value(guests).
				Validate(validateOptionalInt),
			huh.NewSelect[string]().
				Title("Budget Range").
				Options(budgetOptions...).
				Value(budgetLabel),
		),
	)
}

// Event menu actions are encoded as strings so a single select can drive
// the whole collection editor.
const (
	actionAdd      = "add"
	actionContinue = "continue"
	actionBack     = "back"
)

func editAction(id string) string   { return "edit:" + id }
func removeAction(id string) string { return "remove:" + id }

// eventMenuForm builds the event list menu for the events step.
func eventMenuForm(state domain.FormState, cat catalog.Catalog, multiEvent bool, choice *string) *huh.Form {
	options := make([]huh.Option[string], 0, 2*len(state.Events)+3)
	for i, evt := range state.Events {
		label := fmt.Sprintf("Edit event %d", i+1)
		if et, ok := cat.EventType(evt.EventType); ok {
			label = fmt.Sprintf("Edit event %d: %s", i+1, et.Label)
			if evt.Date != "" {
				label += " (" + evt.Date + ")"
			}
		}
		options = append(options, huh.NewOption(label, editAction(evt.ID)))
	}
	if multiEvent {
		options = append(options, huh.NewOption("+ Add another event", actionAdd))
		if len(state.Events) > 1 {
			for i, evt := range state.Events {
				options = append(options,
					huh.NewOption(fmt.Sprintf("- Remove event %d", i+1), removeAction(evt.ID)))
			}
		}
	}
	options = append(options,
		huh.NewOption("Continue →", actionContinue),
		huh.NewOption("← Back", actionBack),
	)

	return themedForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Events").
			Options(options...).
			Value(choice),
	))
}

// eventDetailForm collects type, date, and times for one event.
func eventDetailForm(cat catalog.Catalog, typeKey, date, start, end *string) *huh.Form {
	typeOptions := make([]huh.Option[string], 0, len(cat.EventTypes()))
	for _, et := range cat.EventTypes() {
		typeOptions = append(typeOptions, huh.NewOption(et.Label, et.Key))
	}

	return themedForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Event Type").
			Options(typeOptions...).
			Value(typeKey),
		huh.NewInput().
			Title("Date").
			Placeholder("2026-11-21").
			Value(date).
			Validate(validateOptionalDate),
		huh.NewInput().
			Title("Start Time").
			Placeholder("16:00").
			Value(start).
			Validate(validateOptionalTime),
		huh.NewInput().
			Title("End Time").
			Placeholder("23:00").
			Value(end).
			Validate(validateOptionalTime),
	))
}

// locationMenuForm builds the location list menu inside an event editor.
func locationMenuForm(evt domain.Event, choice *string) *huh.Form {
	options := make([]huh.Option[string], 0, 2*len(evt.Locations)+2)
	for i, loc := range evt.Locations {
		label := fmt.Sprintf("Edit location %d", i+1)
		if loc.Name != "" {
			label = fmt.Sprintf("Edit location %d: %s", i+1, loc.Name)
		}
		options = append(options, huh.NewOption(label, editAction(loc.ID)))
	}
	options = append(options, huh.NewOption("+ Add location", actionAdd))
	if len(evt.Locations) > 1 {
		for i, loc := range evt.Locations {
			options = append(options,
				huh.NewOption(fmt.Sprintf("- Remove location %d", i+1), removeAction(loc.ID)))
		}
	}
	options = append(options, huh.NewOption("Done with locations", actionContinue))

	return themedForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Locations").
			Options(options...).
			Value(choice),
	))
}

// locationForm collects one venue row.
func locationForm(cat catalog.Catalog, name, address, locType, activity *string) *huh.Form {
	typeOptions := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, lt := range cat.LocationTypes() {
		typeOptions = append(typeOptions, huh.NewOption(lt.Label, lt.Key))
	}

	return themedForm(huh.NewGroup(
		huh.NewInput().
			Title("Venue Name").
			Placeholder("Taj Exotica").
			Value(name),
		huh.NewInput().
			Title("Address").
			Value(address),
		huh.NewSelect[string]().
			Title("Location Type").
			Options(typeOptions...).
			Value(locType),
		huh.NewInput().
			Title("Activity").
			Placeholder("e.g. Ceremony, Reception").
			Value(activity),
	))
}

// serviceMenuForm builds the service line menu inside an event editor.
func serviceMenuForm(evt domain.Event, cat catalog.Catalog, choice *string) *huh.Form {
	options := make([]huh.Option[string], 0, 2*len(evt.Services)+2)
	for i, line := range evt.Services {
		label := fmt.Sprintf("Edit service %d", i+1)
		if svc, ok := cat.Service(line.ServiceKey); ok {
			label = fmt.Sprintf("Edit service %d: %s", i+1, svc.Label)
		}
		options = append(options, huh.NewOption(label, editAction(line.ID)))
	}
	options = append(options, huh.NewOption("+ Add service", actionAdd))
	if len(evt.Services) > 1 {
		for i, line := range evt.Services {
			options = append(options,
				huh.NewOption(fmt.Sprintf("- Remove service %d", i+1), removeAction(line.ID)))
		}
	}
	options = append(options, huh.NewOption("Done with services", actionContinue))

	return themedForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Services").
			Options(options...).
			Value(choice),
	))
}

// serviceLineForm collects one service row. The quantity prompt wording
// follows the pricing type of the chosen service, and the quantity field is
// hidden entirely when it is not relevant.
func serviceLineForm(cat catalog.Catalog, serviceKey, quantity, notes *string) *huh.Form {
	svcOptions := make([]huh.Option[string], 0, len(cat.Services()))
	for _, svc := range cat.Services() {
		label := svc.Label
		if svc.Category != "" {
			label = fmt.Sprintf("%s (%s)", svc.Label, svc.Category)
		}
		svcOptions = append(svcOptions, huh.NewOption(label, svc.Key))
	}

	quantityTitle := func() string {
		if svc, ok := cat.Service(*serviceKey); ok {
			return catalog.QuantityLabel(svc.PricingType)
		}
		return "Quantity"
	}
	quantityHidden := func() bool {
		svc, ok := cat.Service(*serviceKey)
		return ok && !catalog.QuantityRelevant(svc.PricingType)
	}

	return themedForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Service").
				Options(svcOptions...).
				Value(serviceKey),
		),
		huh.NewGroup(
			huh.NewInput().
				TitleFunc(quantityTitle, serviceKey).
				Value(quantity).
				Validate(validateOptionalInt),
		).WithHideFunc(quantityHidden),
		huh.NewGroup(
			huh.NewInput().
				Title("Notes").
				Placeholder("anything the team should know").
				Value(notes),
		),
	)
}

// deliverablesForm collects delivery method, photobook, and video outputs.
func deliverablesForm(cat catalog.Catalog, method *string, photobook *bool, copies *string, videoKeys *[]string) *huh.Form {
	methodOptions := make([]huh.Option[string], 0, len(cat.DeliveryMethods()))
	for _, dm := range cat.DeliveryMethods() {
		methodOptions = append(methodOptions, huh.NewOption(dm.Label, dm.Key))
	}
	videoOptions := make([]huh.Option[string], 0, len(cat.VideoOutputs()))
	for _, vo := range cat.VideoOutputs() {
		videoOptions = append(videoOptions, huh.NewOption(vo.Label, vo.Key))
	}

	return themedForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Delivery Method").
				Options(methodOptions...).
				Value(method),
			huh.NewConfirm().
				Title("Include a photobook?").
				Affirmative("Yes").
				Negative("No").
				Value(photobook),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Photobook Copies").
				Placeholder("1").
				Value(copies).
				Validate(validateOptionalInt),
		).WithHideFunc(func() bool { return !*photobook }),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Video Outputs").
				Options(videoOptions...).
				Value(videoKeys),
		),
	)
}

// notesForm collects the free-form additional notes.
func notesForm(notes *string) *huh.Form {
	return themedForm(huh.NewGroup(
		huh.NewText().
			Title("Additional Notes").
			Placeholder("anything else we should know").
			Value(notes),
	))
}

// Review step choices.
const (
	reviewSubmit = "submit"
	reviewBack   = "back"
	reviewSave   = "save"
)

// reviewForm builds the final choice menu shown under the review summary.
func reviewForm(choice *string) *huh.Form {
	return themedForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Ready?").
			Options(
				huh.NewOption("Submit inquiry", reviewSubmit),
				huh.NewOption("← Go back and edit", reviewBack),
				huh.NewOption("Save draft and exit", reviewSave),
			).
			Value(choice),
	))
}

func validateRequired(what string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

// validateOptionalInt accepts empty or a positive integer.
func validateOptionalInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateOptionalDate accepts empty or a YYYY-MM-DD date string.
func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateOptionalTime accepts empty or a HH:MM time string.
func validateOptionalTime(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}
