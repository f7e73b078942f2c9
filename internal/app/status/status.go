package status

// Status is a single log entry or status event, read-only once built
type Status struct {
	Category Category
	Message  string
	Err      error // consumed only for Error
}

// Option customizes a Status built by New
type Option func(*Status)

// WithCategory sets the category of the status
func WithCategory(c Category) Option {
	return func(s *Status) {
		s.Category = c
	}
}

// WithError attaches error detail to the status
func WithError(err error) Option {
	return func(s *Status) {
		s.Err = err
	}
}

// New builds an Info status unless an option says otherwise
func New(message string, opts ...Option) Status {
	s := Status{
		Category: Info,
		Message:  message,
	}

	for _, opt := range opts {
		opt(&s)
	}

	return s
}
