package common

// Arena defaults used when no tuning file overrides them.
const (
	BaseWidth  = 960
	BaseHeight = 540
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
