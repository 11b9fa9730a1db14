package arith

func Panicking[T any](expr T) T  { return expr }
func Wrapping[T any](expr T) T   { return expr }
func Saturating[T any](expr T) T { return expr }

func Checked[T any](expr T) (T, bool) { return expr, true }
