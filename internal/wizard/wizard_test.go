package wizard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hop-Syder/nexus-connect-t4/internal/apiclient"
	"github.com/Hop-Syder/nexus-connect-t4/internal/models"
)

func newWizard() *Wizard {
	return New(apiclient.New("http://127.0.0.1:1"), "awa@example.com")
}

// fillToPreview walks a valid draft through every step.
func fillToPreview(t *testing.T, w *Wizard) {
	t.Helper()

	w.SelectProfileType("freelance")
	require.True(t, w.Next())

	w.SetFirstName("Awa")
	w.SetLastName("Diallo")
	w.SetDescription("Développeuse web freelance à Cotonou")
	w.SetLocation("BJ")
	w.SetCity("Cotonou")
	require.True(t, w.Next())

	w.SetPhone("+22997000000")
	w.SetWhatsapp("+22997000000")
	w.ToggleTag("Web")
	require.True(t, w.Next())

	require.Equal(t, StepPreview, w.Step())
}

func TestNewWizardPrefillsEmail(t *testing.T) {
	w := newWizard()
	assert.Equal(t, StepType, w.Step())
	assert.Equal(t, "awa@example.com", w.Draft().Email)
}

func TestStepOneRequiresProfileType(t *testing.T) {
	w := newWizard()

	assert.False(t, w.Next())
	assert.Equal(t, StepType, w.Step())
	assert.NotEmpty(t, w.Error())

	w.SelectProfileType("artisan")
	assert.True(t, w.Next())
	assert.Equal(t, StepInfo, w.Step())
	assert.Empty(t, w.Error())
}

func TestSelectProfileTypeRejectsUnknownValue(t *testing.T) {
	w := newWizard()
	w.SelectProfileType("startup")
	assert.Empty(t, w.Draft().ProfileType)
}

func TestStepTwoDescriptionCap(t *testing.T) {
	w := newWizard()
	w.SelectProfileType("freelance")
	require.True(t, w.Next())

	w.SetFirstName("Awa")
	w.SetLastName("Diallo")
	w.SetDescription(strings.Repeat("é", 201))
	w.SetLocation("BJ")
	w.SetCity("Cotonou")

	assert.False(t, w.Next())
	assert.Equal(t, StepInfo, w.Step(), "step unchanged after failed guard")
	assert.Contains(t, w.Error(), "200")

	w.SetDescription(strings.Repeat("é", 200))
	assert.True(t, w.Next())
}

func TestSetLocationClearsCity(t *testing.T) {
	w := newWizard()
	w.SetLocation("BJ")
	w.SetCity("Cotonou")
	require.Equal(t, "Cotonou", w.Draft().City)

	w.SetLocation("TG")
	d := w.Draft()
	assert.Equal(t, "TG", d.Location)
	assert.Empty(t, d.City)
}

func TestToggleTagCap(t *testing.T) {
	w := newWizard()
	for _, tag := range []string{"Web", "Mobile", "Python", "React", "Tech"} {
		w.ToggleTag(tag)
	}
	require.Len(t, w.Draft().Tags, 5)
	assert.False(t, w.CanAddTag())

	w.ToggleTag("Couture")
	assert.Len(t, w.Draft().Tags, 5, "sixth tag is a no-op")
	assert.NotContains(t, w.Draft().Tags, "Couture")

	w.ToggleTag("Mobile")
	assert.Len(t, w.Draft().Tags, 4, "toggling a selected tag removes it")
	assert.True(t, w.CanAddTag())
}

func TestAvailableTagsDoesNotTouchSelection(t *testing.T) {
	w := newWizard()
	w.ToggleTag("Web")
	w.ToggleTag("Couture")

	_ = w.AvailableTags("mode", "artisanat")
	assert.Equal(t, []string{"Web", "Couture"}, w.Draft().Tags)
}

func TestAttachLogoRejectsOversizedFile(t *testing.T) {
	w := newWizard()
	require.NoError(t, w.AttachLogo(make([]byte, 1024), "image/png"))
	before := w.Draft().Logo
	require.NotEmpty(t, before)

	err := w.AttachLogo(make([]byte, 3*1024*1024), "image/png")
	assert.Error(t, err)
	assert.NotEmpty(t, w.Error())

	d := w.Draft()
	assert.Equal(t, before, d.Logo, "oversized upload must not mutate the draft")
	assert.Equal(t, before, d.LogoPreview)
}

func TestAttachLogoAcceptsFileAtCap(t *testing.T) {
	w := newWizard()
	require.NoError(t, w.AttachLogo(make([]byte, models.MaxLogoBytes), "image/png"))
	assert.NotEmpty(t, w.Draft().Logo)
	assert.Empty(t, w.Error())
}

func TestRemoveLogoClearsBoth(t *testing.T) {
	w := newWizard()
	require.NoError(t, w.AttachLogo([]byte("png-bytes"), "image/png"))

	w.RemoveLogo()
	d := w.Draft()
	assert.Empty(t, d.Logo)
	assert.Empty(t, d.LogoPreview)
}

func TestBackNeverValidates(t *testing.T) {
	w := newWizard()
	w.SelectProfileType("freelance")
	require.True(t, w.Next())

	// Step 2 is incomplete, but going back must always work.
	w.Back()
	assert.Equal(t, StepType, w.Step())
	assert.Empty(t, w.Error())

	w.Back()
	assert.Equal(t, StepType, w.Step(), "back from the first step stays put")
}

func TestEditingClearsError(t *testing.T) {
	w := newWizard()
	require.False(t, w.Next())
	require.NotEmpty(t, w.Error())

	w.SetFirstName("Awa")
	assert.Empty(t, w.Error())
}

func TestSubmitOnlyFromPreview(t *testing.T) {
	w := newWizard()
	_, err := w.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotOnPreview)
}

func TestSubmitSendsWholeDraft(t *testing.T) {
	var got models.EntrepreneurCreate
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/entrepreneurs", r.URL.Path)
		auth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Entrepreneur{ID: "ent-1", ProfileType: got.ProfileType})
	}))
	defer srv.Close()

	api := apiclient.New(srv.URL)
	api.SetToken("session-token")
	w := New(api, "awa@example.com")
	fillToPreview(t, w)

	created, err := w.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ent-1", created.ID)
	assert.Equal(t, "Bearer session-token", auth)
	assert.Equal(t, "freelance", got.ProfileType)
	assert.Equal(t, "Cotonou", got.City)
	assert.Equal(t, []string{"Web"}, got.Tags)
	assert.Equal(t, "awa@example.com", got.Email)
	assert.Empty(t, w.Error())
}

func TestSubmitFailurePreservesDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"detail":  "Vous avez déjà un profil",
		})
	}))
	defer srv.Close()

	w := New(apiclient.New(srv.URL), "awa@example.com")
	fillToPreview(t, w)
	before := w.Draft()

	_, err := w.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Vous avez déjà un profil", w.Error())
	assert.Equal(t, StepPreview, w.Step())
	assert.Equal(t, before, w.Draft(), "draft stays editable after a failed submit")
	assert.False(t, w.Submitting())
}

func TestSubmitNetworkFailureGenericMessage(t *testing.T) {
	w := newWizard()
	fillToPreview(t, w)

	_, err := w.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Une erreur est survenue lors de la création du profil", w.Error())
}
