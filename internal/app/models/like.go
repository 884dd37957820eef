package models

// Like is a directed edge from liker to likee based on the 'likes' table.
// The ordered pair (LikerID, LikeeID) is the composite primary key; likes are
// immutable once created.
type Like struct {
	LikerID int64 `json:"likerId" db:"liker_id"`
	LikeeID int64 `json:"likeeId" db:"likee_id"`
}
