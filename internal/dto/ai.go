package dto

type AIQueryRequest struct {
	Message string `json:"message"`
}

type AIQueryResponse struct {
	Answer string `json:"answer"`
}
