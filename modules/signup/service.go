package signup

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/signupkit/handler"
	"github.com/dmitrymomot/signupkit/pkg/binder"
	"github.com/dmitrymomot/signupkit/pkg/clientip"
	"github.com/dmitrymomot/signupkit/pkg/logger"
	"github.com/dmitrymomot/signupkit/pkg/ratelimiter"
)

const component = "signup"

var errTooManyAttempts = handler.NewHTTPError(http.StatusTooManyRequests, "Too many signup attempts, please try again later")

// scrollToSuccess mirrors the page's smooth scroll to the success region.
const scrollToSuccess = `document.getElementById('` + SuccessID + `')?.scrollIntoView({behavior: 'smooth', block: 'start'})`

// Recorder receives signup outcomes, e.g. for metrics.
type Recorder interface {
	ValidationFailed(field, code string)
	SignupAccepted()
	RateLimited()
}

type noopRecorder struct{}

func (noopRecorder) ValidationFailed(string, string) {}
func (noopRecorder) SignupAccepted()                 {}
func (noopRecorder) RateLimited()                    {}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithRegistrar replaces the default LocalRegistrar.
func WithRegistrar(r Registrar) Option {
	return func(s *Service) {
		if r != nil {
			s.registrar = r
		}
	}
}

// WithLimiter limits submissions per client address.
func WithLimiter(b *ratelimiter.Bucket) Option {
	return func(s *Service) {
		s.limiter = b
	}
}

// WithRecorder sets the receiver of signup outcomes.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

// Service serves the signup page and its validation endpoints.
type Service struct {
	views        Views
	errorHandler handler.ErrorHandler[handler.Context]
	registrar    Registrar
	limiter      *ratelimiter.Bucket
	recorder     Recorder
	log          *slog.Logger
}

func NewService(views Views, errorHandler handler.ErrorHandler[handler.Context], opts ...Option) (*Service, error) {
	if err := views.validate(); err != nil {
		return nil, err
	}

	s := &Service{
		views:        views,
		errorHandler: errorHandler,
		registrar:    NewLocalRegistrar(),
		recorder:     noopRecorder{},
		log:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component(component))

	return s, nil
}

func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Get("/", handler.Wrap(s.page,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
	))

	r.Post("/signup", handler.Wrap(s.submit,
		handler.WithBinders[handler.Context, SignupRequest](binder.Form()),
		handler.WithDecorators[handler.Context, SignupRequest](s.limitSubmissions),
		handler.WithErrorHandler[handler.Context, SignupRequest](s.errorHandler),
	))

	// Blur: the client posts the whole form so confirmPassword can be
	// compared with password.
	r.Post("/signup/validate/{field}", handler.Wrap(s.validateField,
		handler.WithBinders[handler.Context, SignupRequest](
			binder.Path(chi.URLParam),
			binder.Form(),
		),
		handler.WithErrorHandler[handler.Context, SignupRequest](s.errorHandler),
	))

	// Input: clears the field's error while the user types.
	r.Post("/signup/clear/{field}", handler.Wrap(s.clearField,
		handler.WithBinders[handler.Context, SignupRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[handler.Context, SignupRequest](s.errorHandler),
	))

	return r
}

func (s *Service) page(_ handler.Context, _ struct{}) handler.Response {
	return handler.Templ(s.views.Page(newPageParams(nil, nil)))
}

func (s *Service) submit(ctx handler.Context, req SignupRequest) handler.Response {
	snap := req.Snapshot()
	result := ValidateForm(snap)

	if !result.Valid {
		failures := result.Failures()
		for field, code := range failures {
			s.recorder.ValidationFailed(field, code)
		}
		s.log.DebugContext(ctx, "signup rejected",
			logger.Event("signup_rejected"),
			logger.FailedFields(failures),
		)
		return s.renderResult(ctx, snap, result, nil)
	}

	receipt, err := s.registrar.Register(ctx, NewRegistration(snap))
	if err != nil {
		return handler.Error(err)
	}

	s.recorder.SignupAccepted()
	s.log.InfoContext(ctx, "signup accepted",
		logger.Event("signup_accepted"),
		slog.String("receipt_id", receipt.ID.String()),
		slog.String("email", receipt.MaskedEmail),
	)

	return s.renderResult(ctx, snap, result, &receipt)
}

// renderResult clears every field, presents the fresh results and, on
// success, swaps the form for the success region.
func (s *Service) renderResult(ctx handler.Context, snap Snapshot, result FormResult, receipt *Receipt) handler.Response {
	if handler.IsDataStar(ctx.Request()) {
		return handler.SSE(func(stream handler.StreamContext) error {
			p := newStreamPresenter(s.views)
			ClearAll(p)
			Present(p, result.Ordered()...)
			if err := p.Flush(stream); err != nil {
				return err
			}
			if receipt == nil {
				return nil
			}
			if err := stream.SendComponent(
				s.views.Success(SuccessParams{Receipt: *receipt}),
				handler.WithTarget("#"+SuccessID),
			); err != nil {
				return err
			}
			if err := stream.SendSignal("submitted", true); err != nil {
				return err
			}
			return stream.ExecuteScript(scrollToSuccess)
		})
	}

	p := pagePresenter{}
	Present(p, result.Ordered()...)
	params := newPageParams(snap, p)
	if receipt != nil {
		params.Receipt = receipt
		return handler.Templ(s.views.Page(params))
	}
	return handler.WithStatus(http.StatusUnprocessableEntity, handler.Templ(s.views.Page(params)))
}

func (s *Service) validateField(ctx handler.Context, req SignupRequest) handler.Response {
	id, err := ParseFieldID(req.Field)
	if err != nil {
		return handler.Error(errors.Join(handler.ErrNotFound, err))
	}

	res, err := ValidateField(id, req.Snapshot())
	if err != nil {
		return handler.Error(err)
	}
	if !res.IsValid() {
		s.recorder.ValidationFailed(string(id), string(res.Code))
		s.log.DebugContext(ctx, "field rejected",
			logger.Field(string(id)),
			slog.String("code", string(res.Code)),
		)
	}

	p := newStreamPresenter(s.views)
	Present(p, res)
	if !handler.IsDataStar(ctx.Request()) {
		return p.Fragments()
	}
	return handler.SSE(p.Flush)
}

func (s *Service) clearField(ctx handler.Context, req SignupRequest) handler.Response {
	id, err := ParseFieldID(req.Field)
	if err != nil {
		return handler.Error(errors.Join(handler.ErrNotFound, err))
	}

	if !handler.IsDataStar(ctx.Request()) {
		return handler.Empty()
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		p := newStreamPresenter(s.views)
		p.ClearError(id)
		return p.Flush(stream)
	})
}

// limitSubmissions applies the per-address submit limit. A failing limiter
// store lets the submission through.
func (s *Service) limitSubmissions(next handler.HandlerFunc[handler.Context, SignupRequest]) handler.HandlerFunc[handler.Context, SignupRequest] {
	if s.limiter == nil {
		return next
	}
	return func(ctx handler.Context, req SignupRequest) handler.Response {
		key := "signup:" + clientip.FromRequest(ctx.Request())

		res, err := s.limiter.Allow(ctx, key)
		if err != nil {
			s.log.WarnContext(ctx, "rate limiter unavailable", logger.Error(err))
			return next(ctx, req)
		}

		ratelimiter.SetHeaders(ctx.ResponseWriter(), res)
		if !res.Allowed() {
			s.recorder.RateLimited()
			return handler.Error(errTooManyAttempts)
		}
		return next(ctx, req)
	}
}
