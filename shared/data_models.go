package shared

import "time"

const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// Post types are stored as open strings. These are the ones the clients use.
const (
	PostTypeLostFound = "lost_found"
	PostTypeNote      = "note"
	PostTypeDoubt     = "doubt"
	PostTypeEvent     = "event"
	PostTypeClub      = "club"
)

type User struct {
	Id                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Role              string    `json:"role"`
	MobileNumber      *string   `json:"mobile_number,omitempty"`
	StudentId         *string   `json:"student_id"`
	Branch            *string   `json:"branch"`
	Year              *string   `json:"year,omitempty"`
	Semester          *string   `json:"semester"`
	ManagedClub       *string   `json:"managed_club"`
	TeachingBranches  []string  `json:"teaching_branches"`
	TeachingSemesters []string  `json:"teaching_semesters"`
	CreatedAt         time.Time `json:"created_at"`
}

type Post struct {
	Id              string    `json:"id"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Content         *string   `json:"content"`
	Club            *string   `json:"club"`
	AuthorId        *string   `json:"author_id"`
	AuthorName      *string   `json:"author_name"`
	ImageUrl        *string   `json:"image_url"`
	TargetBranches  []string  `json:"target_branches"`
	TargetSemesters []string  `json:"target_semesters"`
	CreatedAt       time.Time `json:"created_at"`
}

type Comment struct {
	Id         string    `json:"id"`
	PostId     string    `json:"post_id"`
	AuthorId   *string   `json:"author_id"`
	AuthorName *string   `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}
