package config

type App struct {
	Env       string `json:"env" yaml:"env"`
	Debug     bool   `json:"debug" yaml:"debug"`
	AppID     string `json:"appid" yaml:"app_id"`
	AppSecret string `json:"appsecret" yaml:"app_secret"`
}

// Loyalty 会员体系运营参数
type Loyalty struct {
	// 每次打卡增加的成长值
	CheckinGrowth int64 `json:"checkin_growth" yaml:"checkin_growth"`
	// 邀请人获得的积分
	ReferralRewardPoints int64 `json:"referral_reward_points" yaml:"referral_reward_points"`
	// 被邀请人获得的积分
	ReferralInviteePoints int64 `json:"referral_invitee_points" yaml:"referral_invitee_points"`
	// 邀请人获得的成长值
	ReferralGrowth int64 `json:"referral_growth" yaml:"referral_growth"`
	// 券码前缀
	CouponPrefix string `json:"coupon_prefix" yaml:"coupon_prefix"`
	// 邀请码加盐
	InviteSalt string `json:"invite_salt" yaml:"invite_salt"`
}

func DefaultLoyalty() *Loyalty {
	return &Loyalty{
		CheckinGrowth:         10,
		ReferralRewardPoints:  50,
		ReferralInviteePoints: 20,
		ReferralGrowth:        10,
		CouponPrefix:          "RB",
		InviteSalt:            "rocketbird",
	}
}
