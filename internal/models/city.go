package models

import (
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-negocios/internal/validators"
)

// City é carregada pela importação do IBGE e só é lida pela API.
type City struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:50;not null;uniqueIndex:idx_city_name_state" json:"name"`
	State string `gorm:"size:2;not null;uniqueIndex:idx_city_name_state;index" json:"state"`
}

func (c *City) String() string {
	return c.Name + "/" + c.State
}

func (c *City) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.State = strings.ToUpper(strings.TrimSpace(c.State))

	if err := required("name", c.Name); err != nil {
		return err
	}
	if len(c.State) != 2 {
		return validators.Field("state", validators.New(
			validators.KindFormat, validators.CodeInvalidFormat, "UF deve ter 2 letras."))
	}
	return nil
}
