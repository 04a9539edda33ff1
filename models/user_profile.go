package models

// UserProfile defines the structure for user profiles
type UserProfile struct {
	UserID             string   `dynamodbav:"userId" json:"userId"` // Partition Key
	Email              string   `dynamodbav:"email,omitempty" json:"email,omitempty"`
	DisplayName        string   `dynamodbav:"displayName,omitempty" json:"displayName,omitempty"`
	Title              string   `dynamodbav:"title,omitempty" json:"title,omitempty"`
	Bio                string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL           string   `dynamodbav:"photoURL,omitempty" json:"photoURL,omitempty"`
	Experience         string   `dynamodbav:"experience,omitempty" json:"experience,omitempty"`
	Github             string   `dynamodbav:"github,omitempty" json:"github,omitempty"`
	Linkedin           string   `dynamodbav:"linkedin,omitempty" json:"linkedin,omitempty"`
	Portfolio          string   `dynamodbav:"portfolio,omitempty" json:"portfolio,omitempty"`
	Skills             []string `dynamodbav:"skills,omitempty" json:"skills,omitempty"`
	Interests          []string `dynamodbav:"interests,omitempty" json:"interests,omitempty"`
	PersonalityTags    []string `dynamodbav:"personalityTags,omitempty" json:"personalityTags,omitempty"`
	WorkStyle          []string `dynamodbav:"workStyle,omitempty" json:"workStyle,omitempty"`
	PreferredRoles     []string `dynamodbav:"preferredRoles,omitempty" json:"preferredRoles,omitempty"`
	Availability       string   `dynamodbav:"availability,omitempty" json:"availability,omitempty"`
	Timezone           string   `dynamodbav:"timezone,omitempty" json:"timezone,omitempty"`
	CommunicationStyle string   `dynamodbav:"communicationStyle,omitempty" json:"communicationStyle,omitempty"`
	RemoteWork         bool     `dynamodbav:"remoteWork,omitempty" json:"remoteWork,omitempty"`
	City               string   `dynamodbav:"city,omitempty" json:"city,omitempty"`
	Country            string   `dynamodbav:"country,omitempty" json:"country,omitempty"`
	Latitude           float64  `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude          float64  `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`
	MaxDistance        float64  `dynamodbav:"maxDistance,omitempty" json:"maxDistance,omitempty"` // km, for local collaboration
	ProfileStrength    int      `dynamodbav:"profileStrength,omitempty" json:"profileStrength,omitempty"`
	IsProfileComplete  bool     `dynamodbav:"isProfileComplete,omitempty" json:"isProfileComplete,omitempty"`
	CreatedAt          string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	LastActive         string   `dynamodbav:"lastActive,omitempty" json:"lastActive,omitempty"`
}

// UsersTable is the DynamoDB table name for user profiles
const UsersTable = "Users"

// DefaultMaxDistance is the collaboration radius (km) assumed when a user
// has not set one.
const DefaultMaxDistance = 100

// HasCoordinates reports whether the profile carries a usable location.
// Zero lat or lon is treated as unset.
func (p *UserProfile) HasCoordinates() bool {
	return p.Latitude != 0 && p.Longitude != 0
}

// ApplyDefaults normalizes optional fields once at the store boundary so
// callers never have to guard against nil slices or empty preferences.
func (p *UserProfile) ApplyDefaults() {
	if p.DisplayName == "" {
		p.DisplayName = "Anonymous User"
	}
	if p.Title == "" {
		p.Title = "Developer"
	}
	if p.Experience == "" {
		p.Experience = "Beginner"
	}
	if p.Availability == "" {
		p.Availability = "Weekends"
	}
	if p.Timezone == "" {
		p.Timezone = "UTC"
	}
	if p.MaxDistance <= 0 {
		p.MaxDistance = DefaultMaxDistance
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	if p.PersonalityTags == nil {
		p.PersonalityTags = []string{}
	}
	if p.WorkStyle == nil {
		p.WorkStyle = []string{}
	}
	if p.PreferredRoles == nil {
		p.PreferredRoles = []string{}
	}
}

// ComputeProfileStrength scores how filled-in a profile is (0-100).
func (p *UserProfile) ComputeProfileStrength() int {
	strength := 20 // baseline for having an account
	if p.DisplayName != "" {
		strength += 10
	}
	if p.Title != "" {
		strength += 10
	}
	if p.Bio != "" {
		strength += 10
	}
	if len(p.Skills) > 0 {
		strength += 15
	}
	if len(p.Interests) > 0 {
		strength += 10
	}
	if len(p.PersonalityTags) > 0 {
		strength += 5
	}
	if len(p.WorkStyle) > 0 {
		strength += 5
	}
	if p.HasCoordinates() {
		strength += 5
	}
	if p.Github != "" || p.Linkedin != "" || p.Portfolio != "" {
		strength += 10
	}
	if strength > 100 {
		strength = 100
	}
	return strength
}
