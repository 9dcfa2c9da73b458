package consts

// Kafka 事件主题，消费方在下游系统
const (
	TopicPostViews    = "post_views"
	TopicPostLikes    = "post_likes"
	TopicPostComments = "post_comments"
)

// 分页默认值与上限
const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// TitleMaxLen 帖子标题长度上限，超出即校验失败
const TitleMaxLen = 255
