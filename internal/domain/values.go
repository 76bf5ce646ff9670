package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/GlebRadaev/valorhood/pkg/validate"
)

const (
	MinPasswordLength = 8
	MaxTitleLength    = 200
)

type TxKind string

const (
	TxGain  TxKind = "gain"
	TxSpend TxKind = "spend"
)

func ParseTxKind(s string) (TxKind, error) {
	switch k := TxKind(strings.ToLower(strings.TrimSpace(s))); k {
	case TxGain, TxSpend:
		return k, nil
	}
	return "", ErrInvalidTxKind
}

type Category string

const (
	CategoryMed    Category = "med"
	CategoryChore  Category = "chore"
	CategorySocial Category = "social"
	CategorySkill  Category = "skill"
	CategoryMisc   Category = "misc"
)

func Categories() []Category {
	return []Category{CategoryMed, CategoryChore, CategorySocial, CategorySkill, CategoryMisc}
}

// NewCategory never fails: anything outside the closed set becomes misc.
func NewCategory(s string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories() {
		if c == known {
			return c
		}
	}
	return CategoryMisc
}

type QuestStatus string

const (
	QuestActive    QuestStatus = "active"
	QuestCompleted QuestStatus = "completed"
	QuestExpired   QuestStatus = "expired"
)

func (s QuestStatus) IsTerminal() bool {
	return s == QuestCompleted || s == QuestExpired
}

func NewUserID(s string) (string, error) {
	id, ok := validate.CanonicalUUID(s)
	if !ok {
		return "", ErrInvalidUserID
	}
	return id, nil
}

func NewAmount(n int64) (int64, error) {
	if n <= 0 {
		return 0, ErrInvalidAmount
	}
	return n, nil
}

func NewFloor(n int64) (int64, error) {
	if n < 0 {
		return 0, ErrInvalidFloor
	}
	return n, nil
}

func NewQuestID(n int64) (int64, error) {
	if n <= 0 {
		return 0, ErrInvalidQuestID
	}
	return n, nil
}

func ValidatePassword(p string) error {
	if utf8.RuneCountInString(p) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func NormalizeEmail(e string) (string, error) {
	e = strings.ToLower(strings.TrimSpace(e))
	if !validate.IsEmail(e) {
		return "", ErrInvalidEmail
	}
	return e, nil
}

func NewDisplayName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyDisplayName
	}
	return s, nil
}
