package property

type Type string

const (
	TypeApartment Type = "apartment"
	TypeHouse     Type = "house"
	TypeVilla     Type = "villa"
	TypeCabin     Type = "cabin"
	TypeHotel     Type = "hotel"
)

var AllTypes = []Type{TypeApartment, TypeHouse, TypeVilla, TypeCabin, TypeHotel}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeApartment, TypeHouse, TypeVilla, TypeCabin, TypeHotel:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
