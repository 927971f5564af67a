package domain

type List struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type Todo struct {
	ID      int64  `json:"id" db:"id"`
	Text    string `json:"text" db:"text"`
	Checked bool   `json:"checked" db:"checked"`
	ListID  int64  `json:"list_id" db:"list_id"`
}
