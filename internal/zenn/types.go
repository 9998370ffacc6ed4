package zenn

// Wire shapes for the two JSON endpoints the toolkit consumes. A listing
// page carries its successor in next_page; null means the listing is done.

type articleListResponse struct {
	Articles []articleItem `json:"articles"`
	NextPage *int          `json:"next_page"`
}

type articleItem struct {
	Title       string          `json:"title"`
	LikedCount  int             `json:"liked_count"`
	User        *userRef        `json:"user"`
	Publication *publicationRef `json:"publication"`
}

type userRef struct {
	Username string `json:"username"`
}

type publicationRef struct {
	DisplayName string `json:"display_name"`
}

type userResponse struct {
	User userPayload `json:"user"`
}

type userPayload struct {
	Username        string `json:"username"`
	TotalLikedCount int    `json:"total_liked_count"`
	ArticlesCount   int    `json:"articles_count"`
}
