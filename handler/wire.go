package handler

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	wire.Struct(new(Image), "*"),
	wire.Struct(new(User), "*"),
	wire.Struct(new(Page), "*"),
)
