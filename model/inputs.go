package model

// RegisterInput is the /auth/register request body. Pictures ride alongside
// as a multipart file field, not as part of this struct.
type RegisterInput struct {
	FirstName  string `form:"firstName" json:"firstName" binding:"required"`
	LastName   string `form:"lastName" json:"lastName" binding:"required"`
	Email      string `form:"email" json:"email" binding:"required,email"`
	Password   string `form:"password" json:"password" binding:"required,min=6"`
	Location   string `form:"location" json:"location"`
	Occupation string `form:"occupation" json:"occupation"`
}

// LoginInput is the /auth/login request body.
type LoginInput struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// CreatePostInput is the /posts request body, minus the optional picture
// multipart field.
type CreatePostInput struct {
	Description string `form:"description" json:"description" binding:"required"`
}

// CommentInput is the /posts/:id/comment request body.
type CommentInput struct {
	Comment string `form:"comment" json:"comment" binding:"required"`
}
