package invite

import (
	"Encore/config"
	"errors"

	hashids "github.com/speps/go-hashids/v2"
)

const minTokenLength = 16

var ErrInvalidToken = errors.New("invalid invite token")

// Codec 好友邀请令牌编解码
// 令牌就是邀请人自己的用户 ID，用 hashids 包一层，分享出去的字符串不暴露裸 ID
type Codec struct {
	h *hashids.HashID
}

func NewCodec(conf *config.Config) *Codec {
	data := hashids.NewData()
	data.Salt = conf.Invite.Salt
	data.MinLength = minTokenLength
	h, err := hashids.NewWithData(data)
	if err != nil {
		panic(err)
	}
	return &Codec{h: h}
}

func (c *Codec) Encode(userID int64) (string, error) {
	return c.h.EncodeInt64([]int64{userID})
}

func (c *Codec) Decode(token string) (int64, error) {
	ids, err := c.h.DecodeInt64WithError(token)
	if err != nil || len(ids) != 1 {
		return 0, ErrInvalidToken
	}
	return ids[0], nil
}
