// Package features renders the homepage feature cards.
package features

// Descriptor is one homepage feature card. Icon is a static asset path
// relative to the site root, e.g. "img/hero-cloud-tech.svg".
type Descriptor struct {
	Title       string `yaml:"title"`
	Icon        string `yaml:"icon"`
	Description string `yaml:"description"`
}

// Default returns the feature list shown on the wiki homepage.
func Default() []Descriptor {
	return []Descriptor{
		{
			Title:       "Easy to Use - Reactive Java",
			Icon:        "img/hero-java-spring-reactive.svg",
			Description: "Symbolizes a balance between traditional Java foundations and event-driven reactive architectures that handle concurrency and scalability efficiently.",
		},
		{
			Title:       "Focus on What Matters - Architecture",
			Icon:        "img/hero-reusable-architecture.svg",
			Description: "Demonstrates how interfaces, services, and infrastructure layers interact cohesively to promote maintainable and extensible system design.",
		},
		{
			Title:       "Powered by Cloud - Microservices",
			Icon:        "img/hero-cloud-tech.svg",
			Description: "Represents the convergence of microservices, DevOps, and scalable cloud infrastructure powering modern application ecosystems.",
		},
	}
}
