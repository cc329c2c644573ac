// Package wizard is the 4-step profile creation flow: it accumulates a draft
// in memory, guards every forward transition, and submits the completed draft
// once. The draft is never persisted before submit.
package wizard

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/Hop-Syder/nexus-connect-t4/internal/apiclient"
	"github.com/Hop-Syder/nexus-connect-t4/internal/models"
	"github.com/Hop-Syder/nexus-connect-t4/internal/taxonomy"
)

// Step identifies the current wizard screen.
type Step int

const (
	StepType Step = iota + 1
	StepInfo
	StepContactTags
	StepPreview
)

// ErrSubmitInFlight is returned when submit is called while a previous
// submit has not finished.
var ErrSubmitInFlight = errors.New("wizard: submission already in progress")

// ErrNotOnPreview is returned when submit is called before the preview step.
var ErrNotOnPreview = errors.New("wizard: submit is only available from the preview step")

// Draft is the in-progress profile. LogoPreview mirrors Logo so the caller
// can render what will be submitted.
type Draft struct {
	ProfileType  string
	FirstName    string
	LastName     string
	CompanyName  string
	ActivityName string
	Logo         string
	LogoPreview  string
	Description  string
	Tags         []string
	Phone        string
	Whatsapp     string
	Email        string
	Location     string
	City         string
	Website      string
	Portfolio    []models.PortfolioItem
}

// Wizard drives one profile creation from first step to submit.
type Wizard struct {
	api *apiclient.Client

	mu         sync.Mutex
	step       Step
	draft      Draft
	errMsg     string
	submitting bool
}

// New starts a wizard at the first step. The user's email pre-fills the
// contact email field.
func New(api *apiclient.Client, userEmail string) *Wizard {
	return &Wizard{
		api:   api,
		step:  StepType,
		draft: Draft{Email: userEmail},
	}
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// Draft returns a copy of the current draft.
func (w *Wizard) Draft() Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	d := w.draft
	d.Tags = append([]string(nil), w.draft.Tags...)
	d.Portfolio = append([]models.PortfolioItem(nil), w.draft.Portfolio...)
	return d
}

// Error returns the current validation or submit error message, if any.
func (w *Wizard) Error() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errMsg
}

// Submitting reports whether a submit request is in flight.
func (w *Wizard) Submitting() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitting
}

// set runs a mutation on the draft and clears any stale error, matching the
// form behaviour where editing a field dismisses the message.
func (w *Wizard) set(fn func(d *Draft)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.draft)
	w.errMsg = ""
}

// SelectProfileType records the chosen profile type if it exists in the
// taxonomy.
func (w *Wizard) SelectProfileType(value string) {
	if !taxonomy.IsValidProfileType(value) {
		return
	}
	w.set(func(d *Draft) { d.ProfileType = value })
}

func (w *Wizard) SetFirstName(v string)    { w.set(func(d *Draft) { d.FirstName = v }) }
func (w *Wizard) SetLastName(v string)     { w.set(func(d *Draft) { d.LastName = v }) }
func (w *Wizard) SetCompanyName(v string)  { w.set(func(d *Draft) { d.CompanyName = v }) }
func (w *Wizard) SetActivityName(v string) { w.set(func(d *Draft) { d.ActivityName = v }) }
func (w *Wizard) SetDescription(v string)  { w.set(func(d *Draft) { d.Description = v }) }
func (w *Wizard) SetPhone(v string)        { w.set(func(d *Draft) { d.Phone = v }) }
func (w *Wizard) SetWhatsapp(v string)     { w.set(func(d *Draft) { d.Whatsapp = v }) }
func (w *Wizard) SetEmail(v string)        { w.set(func(d *Draft) { d.Email = v }) }
func (w *Wizard) SetWebsite(v string)      { w.set(func(d *Draft) { d.Website = v }) }
func (w *Wizard) SetCity(v string)         { w.set(func(d *Draft) { d.City = v }) }

// SetLocation records the country and clears any previously chosen city,
// since the city list depends on the country.
func (w *Wizard) SetLocation(countryCode string) {
	w.set(func(d *Draft) {
		d.Location = countryCode
		d.City = ""
	})
}

// ToggleTag adds or removes a tag. Adding past the cap is a no-op.
func (w *Wizard) ToggleTag(value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, t := range w.draft.Tags {
		if t == value {
			w.draft.Tags = append(w.draft.Tags[:i], w.draft.Tags[i+1:]...)
			return
		}
	}
	if len(w.draft.Tags) >= models.MaxTags {
		return
	}
	w.draft.Tags = append(w.draft.Tags, value)
}

// CanAddTag reports whether another tag may still be selected.
func (w *Wizard) CanAddTag() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.draft.Tags) < models.MaxTags
}

// AvailableTags returns the candidate tags matching a free-text query and/or
// category. Filtering never touches the selected set.
func (w *Wizard) AvailableTags(query, category string) []taxonomy.Tag {
	return taxonomy.FilterTags(query, category)
}

// AttachLogo stores an image as an inline data URI. Files over the 2 MB cap
// are rejected with a visible error and no draft change.
func (w *Wizard) AttachLogo(data []byte, mimeType string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(data) > models.MaxLogoBytes {
		w.errMsg = "Le fichier est trop volumineux (max 2MB)"
		return fmt.Errorf("wizard: logo exceeds %d bytes", models.MaxLogoBytes)
	}
	if mimeType == "" {
		mimeType = "image/png"
	}
	uri := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	w.draft.Logo = uri
	w.draft.LogoPreview = uri
	w.errMsg = ""
	return nil
}

// RemoveLogo clears both the submitted logo and its preview.
func (w *Wizard) RemoveLogo() {
	w.set(func(d *Draft) {
		d.Logo = ""
		d.LogoPreview = ""
	})
}

// AddPortfolioItem appends an image or link to the portfolio.
func (w *Wizard) AddPortfolioItem(item models.PortfolioItem) {
	w.set(func(d *Draft) { d.Portfolio = append(d.Portfolio, item) })
}

// validateStep is the forward-transition guard. It returns the single
// message shown to the user, or "" when the step passes.
func validateStep(step Step, d *Draft) string {
	switch step {
	case StepType:
		if d.ProfileType == "" {
			return "Veuillez sélectionner un type de profil"
		}
	case StepInfo:
		if strings.TrimSpace(d.FirstName) == "" || strings.TrimSpace(d.LastName) == "" {
			return "Veuillez renseigner votre prénom et votre nom"
		}
		if strings.TrimSpace(d.Description) == "" {
			return "Veuillez ajouter une description"
		}
		if utf8.RuneCountInString(d.Description) > models.MaxDescriptionLength {
			return fmt.Sprintf("La description ne doit pas dépasser %d caractères", models.MaxDescriptionLength)
		}
		if d.Location == "" || d.City == "" {
			return "Veuillez sélectionner votre pays et votre ville"
		}
	case StepContactTags:
		if strings.TrimSpace(d.Phone) == "" || strings.TrimSpace(d.Whatsapp) == "" || strings.TrimSpace(d.Email) == "" {
			return "Veuillez renseigner tous les moyens de contact"
		}
		if len(d.Tags) == 0 {
			return "Veuillez sélectionner au moins une compétence"
		}
	case StepPreview:
		// Preview requires no further input.
	}
	return ""
}

// Next validates the current step and advances on success. It reports
// whether the transition happened.
func (w *Wizard) Next() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step >= StepPreview {
		return false
	}
	if msg := validateStep(w.step, &w.draft); msg != "" {
		w.errMsg = msg
		return false
	}
	w.errMsg = ""
	w.step++
	return true
}

// Back returns to the previous step without validating anything.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepType {
		w.step--
	}
	w.errMsg = ""
}

// Submit sends the whole draft to the backend. On failure the backend's
// detail message (or a generic fallback) is surfaced and the draft stays
// editable.
func (w *Wizard) Submit(ctx context.Context) (*models.Entrepreneur, error) {
	w.mu.Lock()
	if w.step != StepPreview {
		w.mu.Unlock()
		return nil, ErrNotOnPreview
	}
	if w.submitting {
		w.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	w.submitting = true
	payload := &models.EntrepreneurCreate{
		ProfileType:  w.draft.ProfileType,
		FirstName:    w.draft.FirstName,
		LastName:     w.draft.LastName,
		CompanyName:  w.draft.CompanyName,
		ActivityName: w.draft.ActivityName,
		Logo:         w.draft.Logo,
		Description:  w.draft.Description,
		Tags:         append([]string(nil), w.draft.Tags...),
		Phone:        w.draft.Phone,
		Whatsapp:     w.draft.Whatsapp,
		Email:        w.draft.Email,
		Location:     w.draft.Location,
		City:         w.draft.City,
		Website:      w.draft.Website,
		Portfolio:    append([]models.PortfolioItem(nil), w.draft.Portfolio...),
	}
	w.mu.Unlock()

	created, err := w.api.CreateEntrepreneur(ctx, payload)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.submitting = false
	if err != nil {
		var apiErr *apiclient.APIError
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			w.errMsg = apiErr.Detail
		} else {
			w.errMsg = "Une erreur est survenue lors de la création du profil"
		}
		return nil, err
	}
	w.errMsg = ""
	return created, nil
}
