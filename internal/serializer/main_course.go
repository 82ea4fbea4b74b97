package serializer

import (
	"restaurant-pos/internal/models"
	"restaurant-pos/internal/util"
)

type MainCourseInput struct {
	MainName *string `json:"main_name"`
}

func (in *MainCourseInput) Apply(m *models.MainCourse, mode Mode) util.FieldErrors {
	errs := util.FieldErrors{}
	set(errs, "main_name", in.MainName, &m.MainName, mode)
	return finish(errs, m)
}

type MainCourseResp struct {
	ID        uint   `json:"id"`
	MainName  string `json:"main_name"`
	ItemCount int64  `json:"item_count"`
}

func MainCourse(m *models.MainCourse, itemCount int64) MainCourseResp {
	return MainCourseResp{
		ID:        m.ID,
		MainName:  m.MainName,
		ItemCount: itemCount,
	}
}
