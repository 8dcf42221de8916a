package model

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/gofrs/uuid"
)

type QuestionType string

const (
	ShortText    QuestionType = "short-text"
	Paragraph    QuestionType = "paragraph"
	SingleChoice QuestionType = "single-choice"
	MultiChoice  QuestionType = "multi-choice"
	Dropdown     QuestionType = "dropdown"
	Rating       QuestionType = "rating-1-5"
)

func (t QuestionType) Valid() bool {
	switch t {
	case ShortText, Paragraph, SingleChoice, MultiChoice, Dropdown, Rating:
		return true
	}
	return false
}

// HasOptions reports whether questions of this type carry a list of options.
func (t QuestionType) HasOptions() bool {
	switch t {
	case SingleChoice, MultiChoice, Dropdown:
		return true
	}
	return false
}

type FormStatus string

const (
	StatusOpen   FormStatus = "open"
	StatusClosed FormStatus = "closed"
)

func (s FormStatus) Valid() bool {
	return s == StatusOpen || s == StatusClosed
}

type Question struct {
	Text     string       `json:"questionText"`
	Type     QuestionType `json:"questionType"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required"`
}

type Form struct {
	ID            string     `json:"id"`
	AdminID       string     `json:"adminId"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Questions     []Question `json:"questions"`
	Status        FormStatus `json:"status"`
	ResponseCount int        `json:"responseCount"`
	PublicToken   string     `json:"publicToken"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// PublicForm is the anonymous view of a form: no owner, no counters.
type PublicForm struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	Status      FormStatus `json:"status"`
}

func (f *Form) PublicView() PublicForm {
	return PublicForm{
		Title:       f.Title,
		Description: f.Description,
		Questions:   f.Questions,
		Status:      f.Status,
	}
}

type Answer struct {
	QuestionText string `json:"questionText"`
	Answer       string `json:"answer"`
}

type Response struct {
	ID        string    `json:"id"`
	FormID    string    `json:"formId"`
	Answers   []Answer  `json:"answers"`
	CreatedAt time.Time `json:"createdAt"`
}

type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MultiValueSeparator joins multi-choice answer values into their stored flat
// string. Values containing the separator are not escaped, so splitting is
// lossy for such values.
const MultiValueSeparator = ", "

// SplitMultiValue undoes the multi-choice flattening, up to the separator
// limitation above.
func SplitMultiValue(answer string) []string {
	if answer == "" {
		return nil
	}
	return strings.Split(answer, MultiValueSeparator)
}

func NewID() string {
	return uuid.Must(uuid.NewV4()).String()
}

const publicTokenBytes = 8

// NewPublicToken returns the opaque token granting anonymous access to one
// form. Generated once at creation, never regenerated.
func NewPublicToken() string {
	buf := make([]byte, publicTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return hex.EncodeToString(buf)
}

func NewForm(adminID string, draft FormDraft) Form {
	now := time.Now()
	return Form{
		ID:          NewID(),
		AdminID:     adminID,
		Title:       draft.Title,
		Description: draft.Description,
		Questions:   draft.Questions,
		Status:      StatusOpen,
		PublicToken: NewPublicToken(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func NewResponse(formID string, answers []Answer) Response {
	return Response{
		ID:        NewID(),
		FormID:    formID,
		Answers:   answers,
		CreatedAt: time.Now(),
	}
}

func NewAdmin(username, passwordHash string) Admin {
	now := time.Now()
	return Admin{
		ID:           NewID(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
