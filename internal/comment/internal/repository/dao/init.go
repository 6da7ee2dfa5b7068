package dao

import (
	"github.com/ego-component/egorm"
)

// InitTables 依赖 posts 和 comment_likes 表已经建好，启动顺序上这个模块放最后。
// comment_likes 归 like 模块管，但它指向 comments 的外键只能在这里补，
// 因为建表的时候 comments 还不存在。
func InitTables(db *egorm.Component) error {
	if err := db.AutoMigrate(&Comment{}); err != nil {
		return err
	}
	fks := []struct {
		name string
		ddl  string
	}{
		{
			name: "fk_comments_post",
			ddl: "ALTER TABLE `comments` ADD CONSTRAINT `fk_comments_post` " +
				"FOREIGN KEY (`post_id`) REFERENCES `posts`(`id`) ON DELETE CASCADE",
		},
		{
			name: "fk_comment_likes_comment",
			ddl: "ALTER TABLE `comment_likes` ADD CONSTRAINT `fk_comment_likes_comment` " +
				"FOREIGN KEY (`comment_id`) REFERENCES `comments`(`id`) ON DELETE CASCADE",
		},
	}
	for _, fk := range fks {
		var cnt int64
		err := db.Raw(
			"SELECT COUNT(*) FROM information_schema.TABLE_CONSTRAINTS "+
				"WHERE CONSTRAINT_SCHEMA = DATABASE() AND CONSTRAINT_NAME = ?",
			fk.name).Scan(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			continue
		}
		if err := db.Exec(fk.ddl).Error; err != nil {
			return err
		}
	}
	return nil
}
