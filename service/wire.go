package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	ProvideClock,

	wire.Struct(new(SeedService), "*"),
	wire.Bind(new(ISeedService), new(*SeedService)),

	wire.Struct(new(GenerateService), "*"),
	wire.Bind(new(IGenerateService), new(*GenerateService)),

	wire.Struct(new(ImageService), "*"),
	wire.Bind(new(IImageService), new(*ImageService)),

	wire.Struct(new(VoteService), "*"),
	wire.Bind(new(IVoteService), new(*VoteService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
)
