package views_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signupkit/handler"
	"github.com/dmitrymomot/signupkit/modules/signup"
	"github.com/dmitrymomot/signupkit/modules/signup/views"
	"github.com/dmitrymomot/signupkit/pkg/environment"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func pageParams(errs map[signup.FieldID]string, values map[signup.FieldID]string) signup.PageParams {
	var p signup.PageParams
	for _, spec := range signup.Fields() {
		p.Fields = append(p.Fields, signup.FieldState{Spec: spec, Value: values[spec.ID], Error: errs[spec.ID]})
	}
	return p
}

func TestFieldError(t *testing.T) {
	t.Parallel()

	html := render(t, context.Background(), views.FieldError(signup.FieldErrorParams{
		Field:   signup.Email,
		Message: "Please enter a valid <email>",
	}))
	assert.Equal(t, `<span id="emailError" class="error-message">Please enter a valid &lt;email&gt;</span>`, html)

	cleared := render(t, context.Background(), views.FieldError(signup.FieldErrorParams{Field: signup.Terms}))
	assert.Equal(t, `<span id="termsError" class="error-message"></span>`, cleared)
}

func TestPage(t *testing.T) {
	t.Parallel()

	t.Run("blank form", func(t *testing.T) {
		t.Parallel()

		html := render(t, context.Background(), views.Page(pageParams(nil, nil)))

		assert.Contains(t, html, `<form id="signupForm"`)
		assert.Contains(t, html, `id="successMessage" class="success-message" style="display: none"`)
		assert.Contains(t, html, views.DataStarScript)
		assert.Contains(t, html, `id="toast-container"`)
		assert.Contains(t, html, `class="hamburger"`)
		assert.Contains(t, html, "IntersectionObserver")
		for _, spec := range signup.Fields() {
			assert.Contains(t, html, `id="`+string(spec.ID)+`"`)
			assert.Contains(t, html, `id="`+signup.ErrorRegionID(spec.ID)+`"`)
			assert.Contains(t, html, `data-on-blur="@post(&#39;/signup/validate/`+string(spec.ID)+`&#39;`)
		}
		assert.Contains(t, html, `type="checkbox" id="terms" name="terms" value="on" required`)
		assert.NotContains(t, html, "data-on-change")
		assert.NotContains(t, html, `style="border-color: #FF6B6B"`)
		assert.Contains(t, html, "&#34;submitted&#34;:false")
	})

	t.Run("rejected submission", func(t *testing.T) {
		t.Parallel()

		html := render(t, context.Background(), views.Page(pageParams(
			map[signup.FieldID]string{signup.Email: "Please enter a valid email address"},
			map[signup.FieldID]string{signup.Email: "jane@doe", signup.FirstName: `"><script>`, signup.Terms: "on"},
		)))

		assert.Contains(t, html, `value="jane@doe"`)
		assert.Contains(t, html, `class="error" style="border-color: #FF6B6B"`)
		assert.Contains(t, html, `<span id="emailError" class="error-message">Please enter a valid email address</span>`)
		assert.Contains(t, html, "&#34;email&#34;:true")
		assert.NotContains(t, html, `"><script>`)
		assert.Contains(t, html, ` checked`)
		assert.Equal(t, 1, strings.Count(html, `class="error" style=`))
	})

	t.Run("accepted submission", func(t *testing.T) {
		t.Parallel()

		p := pageParams(nil, nil)
		p.Receipt = &signup.Receipt{ID: uuid.New(), Name: "Jane Doe", MaskedEmail: "j***@doe.com"}
		html := render(t, context.Background(), views.Page(p))

		assert.Contains(t, html, `action="/signup" method="post" novalidate data-show="!$submitted" data-on-submit="@post('/signup', {contentType: 'form'})" style="display: none"`)
		assert.Contains(t, html, `style="display: block"`)
		assert.Contains(t, html, "Welcome aboard, Jane Doe!")
		assert.Contains(t, html, p.Receipt.ID.String())
	})

	t.Run("environment banner", func(t *testing.T) {
		t.Parallel()

		dev := render(t, environment.WithContext(context.Background(), environment.Development), views.Page(pageParams(nil, nil)))
		assert.Contains(t, dev, `<div class="env-banner">development</div>`)

		prod := render(t, environment.WithContext(context.Background(), environment.Production), views.Page(pageParams(nil, nil)))
		assert.NotContains(t, prod, "env-banner")
	})
}

func TestSuccess(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	html := render(t, context.Background(), views.Success(signup.SuccessParams{
		Receipt: signup.Receipt{ID: id, Name: "Jane Doe", MaskedEmail: "j***@doe.com"},
	}))

	assert.True(t, strings.HasPrefix(html, `<div id="successMessage" class="success-message" data-show="$submitted">`))
	assert.Contains(t, html, "j***@doe.com")
	assert.Contains(t, html, id.String())

	anonymous := render(t, context.Background(), views.Success(signup.SuccessParams{Receipt: signup.Receipt{ID: id}}))
	assert.Contains(t, anonymous, "Welcome aboard, friend!")
}

func TestErrorViews(t *testing.T) {
	t.Parallel()

	page := render(t, context.Background(), views.ErrorPage(handler.ErrorPageParams{
		Error:      "Too many signup attempts",
		StatusCode: 429,
		RequestID:  "req-1",
		RetryURL:   "/",
	}))
	assert.Contains(t, page, "<title>429 Too Many Requests</title>")
	assert.Contains(t, page, "Too many signup attempts")
	assert.Contains(t, page, "req-1")

	toast := render(t, context.Background(), views.Toast(handler.ErrorToastParams{Message: "oops", Type: "warning"}))
	assert.Equal(t, `<div class="toast toast-warning" role="alert">oops</div>`, toast)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	v := views.Default()
	_, err := signup.NewService(v, nil)
	assert.NoError(t, err)

	cfg := views.ErrorHandlerConfig()
	assert.NotNil(t, cfg.ErrorPage)
	assert.NotNil(t, cfg.ErrorToast)
}
