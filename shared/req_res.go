package shared

type RegisterRequest struct {
	Email             string     `json:"email"`
	Name              string     `json:"name"`
	Password          string     `json:"password"`
	Role              string     `json:"role"`
	MobileNumber      *string    `json:"mobile_number"`
	StudentId         *string    `json:"student_id"`
	Branch            *string    `json:"branch"`
	Year              *string    `json:"year"`
	Semester          *string    `json:"semester"`
	TeachingBranches  MultiValue `json:"teaching_branches"`
	TeachingSemesters MultiValue `json:"teaching_semesters"`
}

type RegisterResponse struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type CreatePostRequest struct {
	Type            string     `json:"type"`
	Title           string     `json:"title"`
	Content         *string    `json:"content"`
	AuthorId        string     `json:"author_id"`
	ImageUrl        *string    `json:"image_url"`
	Club            string     `json:"club"`
	TargetBranches  MultiValue `json:"target_branches"`
	TargetSemesters MultiValue `json:"target_semesters"`
}

type CreatePostResponse struct {
	Id      string `json:"id"`
	Message string `json:"message"`
}

type ListPostsResponse struct {
	Data []*Post `json:"data"`
}

type CreateCommentRequest struct {
	PostId   string `json:"post_id"`
	AuthorId string `json:"author_id"`
	Content  string `json:"content"`
}

type CreateCommentResponse struct {
	Id      string `json:"id"`
	Message string `json:"message"`
}

type ListCommentsResponse struct {
	Data []*Comment `json:"data"`
}

type ListStudentsResponse struct {
	Data []*User `json:"data"`
}

type UploadImageResponse struct {
	Url string `json:"url"`
}
