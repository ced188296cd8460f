package entities

import "time"

type User struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	FirstName string     `gorm:"size:255;not null" json:"firstName"`
	LastName  string     `gorm:"size:255;not null" json:"lastName"`
	Email     string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Exercises []Exercise `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Tags      []Tag      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Exercise struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	UserID       uint          `gorm:"index;not null" json:"userId"`
	Name         string        `gorm:"size:255;not null" json:"name"`
	Description  *string       `gorm:"type:text" json:"description"`
	ExerciseTags []ExerciseTag `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"-"`
	Sets         []Set         `gorm:"foreignKey:ExerciseID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type Tag struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	UserID       uint          `gorm:"index;not null" json:"userId"`
	Name         string        `gorm:"size:255;not null" json:"name"`
	Description  *string       `gorm:"size:1000" json:"description"`
	ExerciseTags []ExerciseTag `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// ExerciseTag is one link between an exercise and a tag. The pair is unique;
// rows disappear with either side.
type ExerciseTag struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ExerciseID uint      `gorm:"not null;uniqueIndex:idx_exercise_tag" json:"exerciseId"`
	TagID      uint      `gorm:"not null;uniqueIndex:idx_exercise_tag;index" json:"tagId"`
	Exercise   *Exercise `gorm:"foreignKey:ExerciseID" json:"-"`
	Tag        *Tag      `gorm:"foreignKey:TagID" json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (ExerciseTag) TableName() string {
	return "exercises_tags"
}

type Set struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ExerciseID uint      `gorm:"index;not null" json:"exerciseId"`
	Weight     *int      `json:"weight"`
	Reps       int       `gorm:"not null" json:"reps"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
