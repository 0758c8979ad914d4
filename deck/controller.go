package deck

import (
	"Encore/models"
	"sync"
	"time"
)

// 滑动判定阈值，位移和瞬时速度满足其一就算一次决定
const (
	SwipeThresholdPx  = 80.0
	SwipeVelocityPxMs = 0.5
)

// 渲染层用的动画时长
const (
	ExitAnimation     = 180 * time.Millisecond
	SnapBackAnimation = 140 * time.Millisecond
)

type State int

const (
	StateIdle State = iota
	StateDragging
	StateCommitting
	StateExhausted
)

type Direction int

const (
	DirPass Direction = iota
	DirLike
)

// Dispatcher 异步发送表态请求，结束后必须回调 done，且只回调一次
// 请求发出后不可取消
type Dispatcher func(workID int64, liked bool, done func(err error))

// Controller 牌堆交互状态机
// 决定是串行的: 同一时刻最多一个在途请求，pending 锁住新的提交，
// 但不锁拖拽的视觉反馈。卡片推进是乐观的，网络失败只弹提示不回退。
type Controller struct {
	mu       sync.Mutex
	works    []*models.Work
	dispatch Dispatcher
	now      func() time.Time

	index     int
	dragging  bool
	dragX     float64
	dragStart time.Time
	pending   bool
	banner    string
	closed    bool
}

func NewController(works []*models.Work, dispatch Dispatcher) *Controller {
	return &Controller{
		works:    works,
		dispatch: dispatch,
		now:      time.Now,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	switch {
	case c.pending:
		return StateCommitting
	case c.index >= len(c.works):
		return StateExhausted
	case c.dragging:
		return StateDragging
	default:
		return StateIdle
	}
}

// Current 当前可见卡片，牌堆耗尽返回 nil
func (c *Controller) Current() *models.Work {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.index >= len(c.works) {
		return nil
	}
	return c.works[c.index]
}

func (c *Controller) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

func (c *Controller) Offset() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dragX
}

func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Banner 非阻塞的错误提示，空串表示没有
func (c *Controller) Banner() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.banner
}

func (c *Controller) DismissBanner() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.banner = ""
}

// PointerDown 开始拖拽，提交在途时忽略
func (c *Controller) PointerDown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending || c.dragging || c.index >= len(c.works) {
		return
	}
	c.dragging = true
	c.dragX = 0
	c.dragStart = c.now()
}

// PointerMove 累加水平位移
func (c *Controller) PointerMove(dx float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dragging || c.pending {
		return
	}
	c.dragX += dx
}

// PointerUp 结算这次拖拽: 过阈值就提交，否则回弹
func (c *Controller) PointerUp() {
	c.mu.Lock()
	if !c.dragging || c.pending {
		c.mu.Unlock()
		return
	}
	c.dragging = false

	ms := float64(c.now().Sub(c.dragStart).Milliseconds())
	if ms <= 0 {
		ms = 1
	}
	velocity := c.dragX / ms

	var dir Direction
	switch {
	case c.dragX > SwipeThresholdPx || velocity > SwipeVelocityPxMs:
		dir = DirLike
	case c.dragX < -SwipeThresholdPx || velocity < -SwipeVelocityPxMs:
		dir = DirPass
	default:
		// 回弹
		c.dragX = 0
		c.mu.Unlock()
		return
	}

	workID, liked := c.commitLocked(dir)
	c.mu.Unlock()
	c.dispatch(workID, liked, c.finish)
}

// HandleKey 键盘等价操作，右=喜欢 左=跳过，不经过拖拽
func (c *Controller) HandleKey(key string) {
	c.mu.Lock()
	if c.pending || c.index >= len(c.works) {
		c.mu.Unlock()
		return
	}

	var dir Direction
	switch key {
	case "ArrowRight":
		dir = DirLike
	case "ArrowLeft":
		dir = DirPass
	default:
		c.mu.Unlock()
		return
	}

	workID, liked := c.commitLocked(dir)
	c.mu.Unlock()
	c.dispatch(workID, liked, c.finish)
}

// commitLocked 乐观提交: 立刻推进卡片，网络请求随后才发
// 调用方持有锁，并负责在放锁后 dispatch
func (c *Controller) commitLocked(dir Direction) (workID int64, liked bool) {
	work := c.works[c.index]
	c.index++
	c.dragging = false
	c.dragX = 0
	c.pending = true
	c.banner = ""
	return work.ID, dir == DirLike
}

// finish 在途请求结束的回调
// 失败只设置提示，绝不动 index，已经划过去的卡不会回来
func (c *Controller) finish(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		// 组件已卸载，迟到的响应直接丢弃
		return
	}
	c.pending = false
	if err != nil {
		c.banner = "无法保存这次选择，可以稍后在喜欢列表里重试"
	}
}

// Close 卸载，之后到达的响应被丢弃
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}
