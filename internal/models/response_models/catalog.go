package response_models

type ShopProductView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	EcoRating   int     `json:"eco_rating"`
}

type CommunityGroupView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MemberCount int    `json:"member_count"`
}

type ChallengeView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	EndsAt      string `json:"ends_at"`
}

type UserChallengeView struct {
	Challenge ChallengeView `json:"challenge"`
	Progress  int           `json:"progress"`
	JoinedAt  int64         `json:"joined_at"`
}
