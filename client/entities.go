package client

// Identifiable is a user that can be identified, tracked or removed.
type Identifiable interface {
	// ThreadsUserID returns the identifier the API knows the user by.
	ThreadsUserID() string
	// ThreadsTraits returns the user's traits, a map or a list.
	ThreadsTraits() any
}

// Trackable is an event that can be tracked for a user.
type Trackable interface {
	// ThreadsEventName returns the name the event is tracked under.
	ThreadsEventName() string
	// ThreadsProperties returns the event properties, a map or a list.
	ThreadsProperties() any
}

// Viewable is a page whose views can be recorded.
type Viewable interface {
	// ThreadsTitle returns the page title sent as the page name.
	ThreadsTitle() string
	// ThreadsProperties returns the page properties, a map or a list.
	ThreadsProperties() any
}

// User is a ready-made Identifiable.
type User struct {
	ID     string
	Traits any
}

// NewUser returns a User with the given traits.
func NewUser(id string, traits any) *User {
	return &User{ID: id, Traits: traits}
}

// ThreadsUserID returns u.ID.
func (u *User) ThreadsUserID() string { return u.ID }

// ThreadsTraits returns u.Traits.
func (u *User) ThreadsTraits() any { return u.Traits }

// Event is a ready-made Trackable.
type Event struct {
	Name       string
	Properties any
}

// NewEvent returns an Event with the given properties.
func NewEvent(name string, properties any) *Event {
	return &Event{Name: name, Properties: properties}
}

// ThreadsEventName returns e.Name.
func (e *Event) ThreadsEventName() string { return e.Name }

// ThreadsProperties returns e.Properties.
func (e *Event) ThreadsProperties() any { return e.Properties }

// Page is a ready-made Viewable.
type Page struct {
	Title      string
	Properties any
}

// NewPage returns a Page with the given properties.
func NewPage(title string, properties any) *Page {
	return &Page{Title: title, Properties: properties}
}

// ThreadsTitle returns p.Title.
func (p *Page) ThreadsTitle() string { return p.Title }

// ThreadsProperties returns p.Properties.
func (p *Page) ThreadsProperties() any { return p.Properties }
