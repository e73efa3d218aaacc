package mapper

import (
	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/entity"
	"autovitrine-be/internal/model"
)

const placeholderImage = "/images/car-placeholder.jpg"

type CarMapper struct{}

func NewCarMapper() *CarMapper {
	return &CarMapper{}
}

func (m *CarMapper) ToEntity(row *model.Car) *entity.Car {
	if row == nil {
		return nil
	}
	car := &entity.Car{
		Id:           row.Id,
		Brand:        row.Brand,
		Model:        row.Model,
		Year:         row.Year,
		Price:        row.Price,
		Mileage:      row.Mileage,
		FuelType:     row.FuelType,
		Transmission: row.Transmission,
		BodyType:     row.BodyType,
		Power:        row.Power,
		Color:        row.Color,
		Doors:        row.Doors,
		Description:  row.Description,
		Status:       entity.CarStatus(row.Status),
		SoldDate:     row.SoldDate,
		UserId:       row.UserId,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	for _, f := range row.Features {
		car.Features = append(car.Features, entity.CarFeature{Id: f.Id, CarId: f.CarId, Name: f.Name})
	}
	for _, img := range row.Images {
		car.Images = append(car.Images, entity.CarImage{Id: img.Id, CarId: img.CarId, URL: img.URL, IsMain: img.IsMain})
	}
	return car
}

func (m *CarMapper) ToModel(car *entity.Car) *model.Car {
	if car == nil {
		return nil
	}
	row := &model.Car{
		Id:           car.Id,
		Brand:        car.Brand,
		Model:        car.Model,
		Year:         car.Year,
		Price:        car.Price,
		Mileage:      car.Mileage,
		FuelType:     car.FuelType,
		Transmission: car.Transmission,
		BodyType:     car.BodyType,
		Power:        car.Power,
		Color:        car.Color,
		Doors:        car.Doors,
		Description:  car.Description,
		Status:       string(car.Status),
		SoldDate:     car.SoldDate,
		UserId:       car.UserId,
		CreatedAt:    car.CreatedAt,
		UpdatedAt:    car.UpdatedAt,
	}
	for _, f := range car.Features {
		row.Features = append(row.Features, model.CarFeature{Id: f.Id, CarId: f.CarId, Name: f.Name})
	}
	for _, img := range car.Images {
		row.Images = append(row.Images, model.CarImage{Id: img.Id, CarId: img.CarId, URL: img.URL, IsMain: img.IsMain})
	}
	return row
}

func (m *CarMapper) ToEntities(rows []*model.Car) []*entity.Car {
	entities := make([]*entity.Car, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, m.ToEntity(row))
	}
	return entities
}

// ToResponse flattens a car into its listing shape. The main image is the
// image flagged as main, falling back to the first image, falling back to a
// placeholder when the car has no images at all.
func (m *CarMapper) ToResponse(car *entity.Car) *dto.CarResponse {
	resp := &dto.CarResponse{
		Id:           car.Id,
		Brand:        car.Brand,
		Model:        car.Model,
		Year:         car.Year,
		Price:        car.Price,
		Mileage:      car.Mileage,
		FuelType:     car.FuelType,
		Transmission: car.Transmission,
		BodyType:     car.BodyType,
		Power:        car.Power,
		Color:        car.Color,
		Doors:        car.Doors,
		Description:  car.Description,
		Status:       string(car.Status),
		SoldDate:     car.SoldDate,
		MainImage:    placeholderImage,
		Images:       make([]string, 0, len(car.Images)),
		Features:     make([]string, 0, len(car.Features)),
		CreatedAt:    car.CreatedAt,
		UpdatedAt:    car.UpdatedAt,
	}
	for _, img := range car.Images {
		resp.Images = append(resp.Images, img.URL)
		if img.IsMain {
			resp.MainImage = img.URL
		}
	}
	if resp.MainImage == placeholderImage && len(resp.Images) > 0 {
		resp.MainImage = resp.Images[0]
	}
	for _, f := range car.Features {
		resp.Features = append(resp.Features, f.Name)
	}
	return resp
}

func (m *CarMapper) ToResponses(cars []*entity.Car) []dto.CarResponse {
	responses := make([]dto.CarResponse, 0, len(cars))
	for _, car := range cars {
		responses = append(responses, *m.ToResponse(car))
	}
	return responses
}
