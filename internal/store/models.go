package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an account. Password holds the bcrypt hash, never plaintext.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is an opaque-token login session.
type Session struct {
	Token     string    `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"index;not null" json:"userId"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// StudyPlan is a generated schedule. GeneratedPlan holds the full plan
// document (items, totals, message) as JSON; the relational columns keep
// the request inputs queryable.
type StudyPlan struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"index;not null" json:"userId"`
	Subject        string    `gorm:"not null" json:"subject"`
	CustomSubject  string    `json:"customSubject,omitempty"`
	KnowledgeLevel string    `json:"knowledgeLevel"`
	AvailableHours int       `gorm:"not null" json:"availableHours"`
	Challenges     string    `gorm:"type:text" json:"-"`
	EnergyTime     string    `json:"energyTime,omitempty"`
	RawTasks       string    `gorm:"type:text;not null" json:"rawTasks"`
	GeneratedPlan  string    `gorm:"type:text;not null" json:"-"`
	Fallback       bool      `json:"fallback"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Task is a standalone to-do, optionally tied to a plan.
type Task struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"index;not null" json:"userId"`
	PlanID      string     `gorm:"index" json:"planId,omitempty"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `gorm:"default:medium" json:"priority"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// StudySession is a logged block of study time.
type StudySession struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"index;not null" json:"userId"`
	PlanID      string     `json:"planId,omitempty"`
	TaskID      string     `json:"taskId,omitempty"`
	Duration    int        `gorm:"not null" json:"duration"`
	FocusLevel  *int       `json:"focusLevel,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// EmotionEntry is one mood check-in.
type EmotionEntry struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"index;not null" json:"userId"`
	Emotion    string    `gorm:"not null" json:"emotion"`
	Intensity  int       `gorm:"not null" json:"intensity"`
	Context    string    `json:"context,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

// ProgressEvent is one row of the append-only ledger the gamification
// state reduces from.
type ProgressEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;not null" json:"userId"`
	Kind      string    `gorm:"not null" json:"kind"`
	TaskID    string    `json:"taskId,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Emotion   string    `json:"emotion,omitempty"`
	Minutes   int       `json:"minutes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserStats is the cached reduction of a user's ledger. It exists for
// cheap reads; the events remain the source of truth.
type UserStats struct {
	UserID         string     `gorm:"primaryKey" json:"userId"`
	XP             int        `gorm:"default:0" json:"xp"`
	Level          int        `gorm:"default:1" json:"level"`
	CurrentStreak  int        `gorm:"default:0" json:"currentStreak"`
	LongestStreak  int        `gorm:"default:0" json:"longestStreak"`
	LastStudyDate  *time.Time `json:"lastStudyDate,omitempty"`
	TotalStudyTime int        `gorm:"default:0" json:"totalStudyTime"`
	TasksCompleted int        `gorm:"default:0" json:"tasksCompleted"`
	PlansCreated   int        `gorm:"default:0" json:"plansCreated"`
	EmotionsLogged int        `gorm:"default:0" json:"emotionsLogged"`
	SessionsLogged int        `gorm:"default:0" json:"sessionsLogged"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// LLMRequestLog records one provider call for observability.
type LLMRequestLog struct {
	ID           uint      `gorm:"primaryKey"`
	Provider     string    `gorm:"not null"`
	Model        string    `gorm:"not null"`
	Purpose      string    `gorm:"index"`
	InputTokens  int
	OutputTokens int
	CostUSD      float64
	LatencyMs    int64
	Success      bool
	ErrorMessage string `gorm:"type:text"`
	RequestBody  string `gorm:"type:text"`
	ResponseBody string `gorm:"type:text"`
	CreatedAt    time.Time
}

// BeforeCreate assigns uuid primary keys where the caller left them empty.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (p *StudyPlan) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (t *Task) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

func (s *StudySession) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (e *EmotionEntry) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
