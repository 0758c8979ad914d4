package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// 访问令牌有效期，单位秒
	AccessExpire int `json:"access_expire" yaml:"access_expire"`
}

// Invite 好友邀请令牌配置
type Invite struct {
	Salt string `json:"salt" yaml:"salt"`
}
