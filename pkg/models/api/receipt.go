package api

type GenerateReceiptRequest struct {
	Period string `json:"period"`
}

type ParseReceiptRequest struct {
	Period string `json:"period"`
	Text   string `json:"text"`
}

type AppUsage struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Minutes  int    `json:"minutes"`
	Time     string `json:"time"`
	Icon     string `json:"icon"`
}

type UsageCategory struct {
	Name     string     `json:"name"`
	Apps     []AppUsage `json:"apps"`
	Subtotal string     `json:"subtotal"`
}

type Recommendation struct {
	Headline string `json:"headline"`
	Message  string `json:"message"`
}

type Receipt struct {
	Period         string          `json:"period"`
	StartDate      string          `json:"start_date"`
	EndDate        string          `json:"end_date"`
	GeneratedAt    string          `json:"generated_at"`
	Categories     []UsageCategory `json:"categories"`
	GrandTotal     int             `json:"grand_total_minutes"`
	GrandTotalTime string          `json:"grand_total"`
	Recommendation Recommendation  `json:"recommendation"`
}
