package dto

type Filter struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

type Pagination struct {
	Records      interface{} `json:"records"`
	TotalRecords int64       `json:"total_records,omitempty"`
	Page         int         `json:"page,omitempty"`
	Limit        int         `json:"limit,omitempty"`
}
