package envutil

// Option modifies a Reader. It's used by constructors like String and Bool
// so that callers can supply defaults and validation inline.
type Option[T any] func(Reader[T]) Reader[T]

// Default supplies a value to use when the variable is not set.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// Validate runs f on the value. If f returns an error, the Reader carries it.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.Map(func(val T) (T, error) {
			return val, f(val)
		})
	}
}
