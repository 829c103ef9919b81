package utils

import (
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/speps/go-hashids/v2"
)

const couponCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenHashID 根据自增 ID 生成短码（用于会员邀请码）
func GenHashID(salt string, id int) string {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	h, _ := hashids.NewWithData(hd)
	e, _ := h.Encode([]int{id})
	return e
}

// DecodeHashID 邀请码反解为 ID，解析失败返回 0
func DecodeHashID(salt string, code string) int {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 8
	h, _ := hashids.NewWithData(hd)
	ids, err := h.DecodeWithError(code)
	if err != nil || len(ids) == 0 {
		return 0
	}
	return ids[0]
}

// GenCouponCode 券码格式：固定前缀 + 36 进制时间戳 + 4 位随机大写字符
// 唯一性是概率意义上的，不做全局保证
func GenCouponCode(prefix string) string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().Unix(), 36))
	b := make([]byte, 4)
	for i := range b {
		b[i] = couponCharset[rand.Intn(len(couponCharset))]
	}
	return prefix + ts + string(b)
}

// MtRand 生成指定范围内的随机数
func MtRand(min, max int) int {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return r.Intn(max-min+1) + min
}

// BeginOfToday 本地时区当日零点
func BeginOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
