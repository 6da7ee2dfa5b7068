package dao

import (
	"github.com/ego-component/egorm"
)

// InitTables 依赖 posts 表已经建好，启动顺序上 post 模块在前。
// comment_likes 到 comments 的外键由 comment 模块补，那张表建得比这里晚。
func InitTables(db *egorm.Component) error {
	if err := db.AutoMigrate(&PostLike{}, &CommentLike{}); err != nil {
		return err
	}
	var cnt int64
	err := db.Raw(
		"SELECT COUNT(*) FROM information_schema.TABLE_CONSTRAINTS "+
			"WHERE CONSTRAINT_SCHEMA = DATABASE() AND CONSTRAINT_NAME = ?",
		"fk_post_likes_post").Scan(&cnt).Error
	if err != nil {
		return err
	}
	if cnt > 0 {
		return nil
	}
	return db.Exec(
		"ALTER TABLE `post_likes` ADD CONSTRAINT `fk_post_likes_post` " +
			"FOREIGN KEY (`post_id`) REFERENCES `posts`(`id`) ON DELETE CASCADE").Error
}
