package entity

import "encoding/json"

// Language is one language variety row from the info table. ID is the
// stable 語言ID assigned by the dataset; everything else is an opaque
// display string the service passes through untouched.
type Language struct {
	ID          int64
	Name        string // 語言
	Abbr        string // 簡稱
	Atlas2Sort  string // 地圖集二排序
	Atlas2Color string
	Atlas2Area  string
	DictSort    string // 音典排序
	DictColor   string
	DictArea    string
	ChenSort    string // 陳邡排序
	ChenColor   string
	ChenArea    string
	Location    string // 地點
	Coordinates string // "經度,緯度"
}

// MarshalJSON emits the fixed-order 14-field tuple the frontend expects:
// [id, name, abbr, sort/color/area for the three editorial schemes, location, coords].
func (l Language) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		l.ID, l.Name, l.Abbr,
		l.Atlas2Sort, l.Atlas2Color, l.Atlas2Area,
		l.DictSort, l.DictColor, l.DictArea,
		l.ChenSort, l.ChenColor, l.ChenArea,
		l.Location, l.Coordinates,
	})
}
