package model

// Feature is a game feature shown on the home and features pages.
type Feature struct {
	ID          int64  `json:"id" db:"id" yaml:"-"`
	Title       string `json:"title" db:"titulo" yaml:"title"`
	Description string `json:"description" db:"descripcion" yaml:"description"`
	Icon        string `json:"icon" db:"icono" yaml:"icon"`
	AgeGroup    string `json:"age_group" db:"grupo_edad" yaml:"age_group"`
}

// Testimonial is a quote from a parent or educator.
type Testimonial struct {
	ID     int64  `json:"id" db:"id" yaml:"-"`
	Name   string `json:"name" db:"nombre" yaml:"name"`
	Role   string `json:"role" db:"rol" yaml:"role"`
	Text   string `json:"text" db:"texto" yaml:"text"`
	Rating int    `json:"rating" db:"calificacion" yaml:"rating"`
}

// Statistics is the singleton row of headline numbers. Values are display
// strings such as "1000+", not counts.
type Statistics struct {
	Players   string `json:"players" db:"jugadores" yaml:"players"`
	Schools   string `json:"schools" db:"escuelas" yaml:"schools"`
	Countries string `json:"countries" db:"paises" yaml:"countries"`
}

// ZeroStatistics returns the default shown when no statistics row is available.
func ZeroStatistics() *Statistics {
	return &Statistics{Players: "0", Schools: "0", Countries: "0"}
}

// HomeContent is everything the home page displays.
type HomeContent struct {
	Features     []*Feature     `json:"features"`
	Testimonials []*Testimonial `json:"testimonials"`
	Stats        *Statistics    `json:"stats"`
}
