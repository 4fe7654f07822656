package dto

type CreateStudentRequest struct {
	LastName      string `json:"last_name" binding:"required,max=100"`
	FirstName     string `json:"first_name" binding:"required,max=100"`
	Email         string `json:"email" binding:"required,email,max=150"`
	Password      string `json:"password" binding:"required,min=8"`
	StudentNumber string `json:"student_number"`
	Level         string `json:"level"`
	GroupID       *uint  `json:"group_id"`
}

type UpdateStudentRequest struct {
	LastName      *string `json:"last_name" binding:"omitempty,max=100"`
	FirstName     *string `json:"first_name" binding:"omitempty,max=100"`
	Email         *string `json:"email" binding:"omitempty,email,max=150"`
	StudentNumber *string `json:"student_number"`
	Level         *string `json:"level"`
	GroupID       *uint   `json:"group_id"`
}

type CreateProfessorRequest struct {
	LastName   string `json:"last_name" binding:"required,max=100"`
	FirstName  string `json:"first_name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email,max=150"`
	Password   string `json:"password" binding:"required,min=8"`
	Speciality string `json:"speciality"`
}

type UpdateProfessorRequest struct {
	LastName   *string `json:"last_name" binding:"omitempty,max=100"`
	FirstName  *string `json:"first_name" binding:"omitempty,max=100"`
	Email      *string `json:"email" binding:"omitempty,email,max=150"`
	Speciality *string `json:"speciality"`
}

type CreateModuleRequest struct {
	Name        string `json:"name" binding:"required,max=150"`
	Description string `json:"description"`
}

type UpdateModuleRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=150"`
	Description *string `json:"description"`
}

// AdminStats holds the entity counts shown on the admin dashboard.
type AdminStats struct {
	Users      int64 `json:"users"`
	Students   int64 `json:"students"`
	Professors int64 `json:"professors"`
	Modules    int64 `json:"modules"`
	Groups     int64 `json:"groups"`
	Quizzes    int64 `json:"quizzes"`
	Questions  int64 `json:"questions"`
	Attempts   int64 `json:"attempts"`
	Responses  int64 `json:"responses"`
}
