package types

// BookmarkAction reports what a toggle did
type BookmarkAction string

const (
	BookmarkAdded   BookmarkAction = "added"
	BookmarkRemoved BookmarkAction = "removed"
)

// BookmarkRecipeRequest represents the request body for toggling a recipe bookmark
type BookmarkRecipeRequest struct {
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	ReadyInMinutes OptionalInt `json:"readyInMinutes"`
	Servings       OptionalInt `json:"servings"`
	URL            *string     `json:"url"`
}

// BookmarkRestaurantRequest represents the request body for toggling a restaurant bookmark
type BookmarkRestaurantRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Rating      *float64     `json:"rating"`
	ReviewCount OptionalInt  `json:"review_count"`
	Price       *string      `json:"price"`
	Address     *string      `json:"address"`
	Coordinates *Coordinates `json:"coordinates"`
	URL         *string      `json:"url"`
}

// BookmarkResponse is returned by both toggle endpoints
type BookmarkResponse struct {
	Message string         `json:"message"`
	Action  BookmarkAction `json:"action"`
}

// RegisterForm is the registration form body
type RegisterForm struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Password string `form:"password"`
}

// LoginForm is the login form body
type LoginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}
