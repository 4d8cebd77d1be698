package optional

// Of 値が存在しないことを表現できる型
type Of[T any] struct {
	V     T
	Valid bool
}

// From 値が存在するOfを生成します
func From[T any](v T) Of[T] {
	return Of[T]{V: v, Valid: true}
}

// New validに応じてOfを生成します
func New[T any](v T, valid bool) Of[T] {
	return Of[T]{V: v, Valid: valid}
}

// ValueOrZero 値が存在しない場合はゼロ値を返します
func (o Of[T]) ValueOrZero() T {
	if o.Valid {
		return o.V
	}
	var zero T
	return zero
}

// ValueOr 値が存在しない場合はdefを返します
func (o Of[T]) ValueOr(def T) T {
	if o.Valid {
		return o.V
	}
	return def
}
