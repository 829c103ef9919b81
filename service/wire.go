package service

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	wire.Struct(new(PointService), "*"),
	wire.Bind(new(IPointService), new(*PointService)),
	wire.Struct(new(LevelService), "*"),
	wire.Bind(new(ILevelService), new(*LevelService)),
	wire.Struct(new(CheckinService), "*"),
	wire.Bind(new(ICheckinService), new(*CheckinService)),
	wire.Struct(new(ExchangeService), "*"),
	wire.Bind(new(IExchangeService), new(*ExchangeService)),
	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),
	wire.Struct(new(MemberService), "*"),
	wire.Bind(new(IMemberService), new(*MemberService)),
	wire.Struct(new(WeChatService), "*"),
	wire.Bind(new(IWeChatService), new(*WeChatService)),
	wire.Struct(new(ReferralService), "*"),
	wire.Bind(new(IReferralService), new(*ReferralService)),
	wire.Struct(new(FeedbackService), "*"),
	wire.Bind(new(IFeedbackService), new(*FeedbackService)),
	wire.Struct(new(AdminService), "*"),
	wire.Bind(new(IAdminService), new(*AdminService)),
)
