package dto

// Pagination carries the paging metadata returned next to every windowed
// list. CurrentPage and PageSize echo the request unmodified; an out-of-range
// page legitimately yields an empty item list with the same metadata.
type Pagination struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalCount  int64 `json:"totalCount" example:"23"`
	TotalPages  int   `json:"totalPages" example:"3"`
}
