package service

import "rocketbird/pkg/response"

// 业务错误统一在这里注册，handler 通过 context.Wrap 返回后由
// ErrorMiddleware 转成 {code, msg} 响应。
var (
	ErrBadRequest = response.NewError(40000, "参数错误")

	ErrInsufficientBalance   = response.NewError(40010, "积分余额不足")
	ErrDailyLimitExceeded    = response.NewError(40011, "今日打卡次数已达上限")
	ErrOutOfStock            = response.NewError(40012, "商品库存不足")
	ErrExchangeLimitExceeded = response.NewError(40013, "超出每人限兑数量")
	ErrOrderNotRedeemable    = response.NewError(40014, "兑换单不是待使用状态")
	ErrDeliveryRequired      = response.NewError(40015, "实物商品需填写收货信息")
	ErrInvalidInviteCode     = response.NewError(40016, "邀请码无效")
	ErrSelfReferral          = response.NewError(40017, "不能绑定自己的邀请码")
	ErrAlreadyBound          = response.NewError(40018, "已绑定过邀请关系")
	ErrRecordNotReviewable   = response.NewError(40019, "该打卡记录无需审核")
	ErrLevelRangeOverlap     = response.NewError(40020, "成长值区间与已有等级重叠")

	ErrForbidden     = response.NewError(40300, "无权操作")
	ErrLoginFailed   = response.NewError(40100, "账号或密码错误")
	ErrAccountFrozen = response.NewError(40101, "账号已被禁用")

	ErrMemberNotFound  = response.NewError(40401, "会员不存在")
	ErrAccountNotFound = response.NewError(40402, "积分账户不存在")
	ErrProductNotFound = response.NewError(40403, "商品不存在或已下架")
	ErrOrderNotFound   = response.NewError(40404, "兑换单不存在")
	ErrThemeNotFound   = response.NewError(40405, "打卡主题不存在或不在活动期内")
	ErrRecordNotFound  = response.NewError(40406, "打卡记录不存在")
	ErrLevelNotFound   = response.NewError(40407, "等级不存在")
	ErrUsernameTaken   = response.NewError(40009, "用户名已存在")
)
