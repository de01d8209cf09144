package entity

// Restaurant receives reviews. Name is 1-25 characters, enforced at
// construction time.
type Restaurant struct {
	BaseSimple
	Name string
}
