package entity

// Customer authors reviews. First and last name are 1-25 characters,
// enforced at construction time.
type Customer struct {
	BaseSimple
	FirstName string
	LastName  string
}

func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
