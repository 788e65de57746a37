package models

// Package is a bookable studio package. The catalog is fixed at build time
// and never mutated; prices are in whole pounds.
type Package struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Price       int      `bson:"price" json:"price"`
	Duration    string   `bson:"duration" json:"duration"`
	Features    []string `bson:"features" json:"features"`
	Badge       string   `bson:"badge,omitempty" json:"badge,omitempty"`
}

// Packages is the full catalog of bookable studio packages.
var Packages = []Package{
	{
		ID:          "starter",
		Name:        "STARTER",
		Description: "Audio & Single-Angle Video",
		Price:       250,
		Duration:    "2 hours",
		Features: []string{
			"Premium podcast studio hire",
			"High-end microphones & RØDECaster Pro",
			"2 x Blackmagic 6K camera (static angle)",
			"Professional audio capture & sync",
			"Clean programme video file",
			"Raw audio file",
		},
	},
	{
		ID:          "pro",
		Name:        "PRO",
		Description: "Multi-Camera Podcast",
		Price:       450,
		Duration:    "up to 3 hours",
		Badge:       "POPULAR",
		Features: []string{
			"Fully rigged premium studio",
			"Up to 4 x Blackmagic 6K cameras",
			"ATEM Mini Extreme ISO live switching",
			"Broadcast-quality audio via RØDECaster",
			"Multi-angle programme edit (live cut)",
			"ISO camera recordings",
			"Separate audio stems",
			"Studio technician on site",
		},
	},
	{
		ID:          "broadcast",
		Name:        "BROADCAST",
		Description: "Full Production Experience",
		Price:       750,
		Duration:    "half day (up to 5 hours)",
		Features: []string{
			"Full premium studio access",
			"4 x Blackmagic 6K cinema cameras",
			"ATEM Mini Extreme ISO (live switching + ISO)",
			"Advanced lighting setup",
			"Dedicated producer / engineer",
			"Multiple takes & retakes",
			"Programme feed + all ISO files",
			"Separate audio tracks",
			"Pre-session setup & post-session packdown",
		},
	},
	{
		ID:          "ultimate",
		Name:        "ULTIMATE",
		Description: "TV-Level Full Day Production",
		Price:       1000,
		Duration:    "full day (up to 8 hours)",
		Badge:       "BEST VALUE",
		Features: []string{
			"FULL DAY studio access (up to 8 hours)",
			"Shoot 3-4 shows in one day",
			"4 x Blackmagic 6K cinema cameras",
			"ATEM Mini Extreme ISO (live switching + ISO)",
			"Advanced lighting setup",
			"Dedicated producer / engineer",
			"Multiple takes & retakes",
			"Programme feed + all ISO files",
			"Separate audio tracks",
			"Pre-session setup & post-session packdown",
			"Optional: Short-form clips (Reels/TikTok/Shorts)",
		},
	},
}

// FindPackage returns the catalog package with the given ID, or nil.
func FindPackage(id string) *Package {
	for i := range Packages {
		if Packages[i].ID == id {
			return &Packages[i]
		}
	}
	return nil
}
