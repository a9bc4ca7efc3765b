package sql

import (
	"errors"
	"testing"
)

func TestParseCreateTable_Basic(t *testing.T) {
	stmt, err := Parse("CREATE TABLE users (id INT, name TEXT, age INT);")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ct, ok := stmt.(*CreateTableStmt)
	if !ok {
		t.Fatalf("expected *CreateTableStmt, got %T", stmt)
	}
	if ct.TableName != "users" {
		t.Fatalf("expected table name %q, got %q", "users", ct.TableName)
	}
	if len(ct.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(ct.Columns))
	}

	assertCol := func(idx int, name string, dt DataType) {
		if ct.Columns[idx].Name != name {
			t.Fatalf("column %d: expected name %q, got %q", idx, name, ct.Columns[idx].Name)
		}
		if ct.Columns[idx].Type != dt {
			t.Fatalf("column %d: expected type %v, got %v", idx, dt, ct.Columns[idx].Type)
		}
	}
	assertCol(0, "id", TypeInt)
	assertCol(1, "name", TypeText)
	assertCol(2, "age", TypeInt)
}

func TestParseCreateTable_CaseAndSpaces(t *testing.T) {
	stmt, err := Parse("  create   table   Accounts ( id int ,  owner text )  ")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ct := stmt.(*CreateTableStmt)
	if ct.TableName != "Accounts" {
		t.Fatalf("expected table name %q preserved as written, got %q", "Accounts", ct.TableName)
	}
}

func TestParseDropTable(t *testing.T) {
	stmt, err := Parse("DROP TABLE users")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	dt, ok := stmt.(*DropTableStmt)
	if !ok {
		t.Fatalf("expected *DropTableStmt, got %T", stmt)
	}
	if dt.TableName != "users" {
		t.Fatalf("expected table name %q, got %q", "users", dt.TableName)
	}
}

func TestParseAlterTable_AddDefaultsToText(t *testing.T) {
	stmt, err := Parse("ALTER TABLE users ADD email")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	at := stmt.(*AlterTableStmt)
	if at.Action != AlterAddColumn {
		t.Fatalf("expected AlterAddColumn, got %v", at.Action)
	}
	if at.Column.Name != "email" || at.Column.Type != TypeText {
		t.Fatalf("expected email TEXT, got %+v", at.Column)
	}
}

func TestParseAlterTable_AddWithType(t *testing.T) {
	stmt, err := Parse("ALTER TABLE users ADD score INT")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	at := stmt.(*AlterTableStmt)
	if at.Column.Name != "score" || at.Column.Type != TypeInt {
		t.Fatalf("expected score INT, got %+v", at.Column)
	}
}

func TestParseAlterTable_Drop(t *testing.T) {
	stmt, err := Parse("ALTER TABLE users DROP email")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	at := stmt.(*AlterTableStmt)
	if at.Action != AlterDropColumn || at.Column.Name != "email" {
		t.Fatalf("expected drop of email, got %+v", at)
	}
}

func TestParseAlterTable_ModifyRequiresType(t *testing.T) {
	stmt, err := Parse("ALTER TABLE users MODIFY age TEXT")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	at := stmt.(*AlterTableStmt)
	if at.Action != AlterModifyColumn || at.Column.Type != TypeText {
		t.Fatalf("expected modify to TEXT, got %+v", at)
	}

	if _, err := Parse("ALTER TABLE users MODIFY age"); err == nil {
		t.Fatalf("expected error for MODIFY without a type")
	}
}

func TestParseInsert_Basic(t *testing.T) {
	stmt, err := Parse("INSERT INTO users (id, name, age) VALUES ('1', 'srishti', '30');")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ins, ok := stmt.(*InsertStmt)
	if !ok {
		t.Fatalf("expected *InsertStmt, got %T", stmt)
	}
	if ins.TableName != "users" {
		t.Fatalf("expected table %q, got %q", "users", ins.TableName)
	}
	if len(ins.Columns) != 3 || ins.Columns[0] != "id" || ins.Columns[2] != "age" {
		t.Fatalf("unexpected column list: %v", ins.Columns)
	}
	if len(ins.Values) != 1 {
		t.Fatalf("expected 1 tuple, got %d", len(ins.Values))
	}
	want := []string{"1", "srishti", "30"}
	for i, v := range want {
		if ins.Values[0][i] != v {
			t.Fatalf("value %d: expected %q, got %q", i, v, ins.Values[0][i])
		}
	}
}

func TestParseInsert_MultipleTuples(t *testing.T) {
	stmt, err := Parse("INSERT INTO users (id, name) VALUES ('1', 'a'), ('2', 'b')")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ins := stmt.(*InsertStmt)
	if len(ins.Values) != 2 {
		t.Fatalf("expected 2 tuples, got %d", len(ins.Values))
	}
	if ins.Values[1][1] != "b" {
		t.Fatalf("expected second tuple to hold %q, got %q", "b", ins.Values[1][1])
	}
}

func TestParseInsert_ArityMismatch(t *testing.T) {
	_, err := Parse("INSERT INTO users (id, name) VALUES ('1')")
	if !errors.Is(err, ErrArity) {
		t.Fatalf("expected ErrArity, got %v", err)
	}
}

func TestParseInsert_BareNumericLiteral(t *testing.T) {
	// Bare numbers are accepted and carried as raw text; the engine coerces
	// them against the destination column type.
	stmt, err := Parse("INSERT INTO users (id) VALUES (7)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ins := stmt.(*InsertStmt)
	if ins.Values[0][0] != "7" {
		t.Fatalf("expected raw text %q, got %q", "7", ins.Values[0][0])
	}
}

func TestParseUpdate_Basic(t *testing.T) {
	stmt, err := Parse("UPDATE users SET age = '40', name = 'Bob' WHERE name = 'Srijan'")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	up, ok := stmt.(*UpdateStmt)
	if !ok {
		t.Fatalf("expected *UpdateStmt, got %T", stmt)
	}
	if len(up.Assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(up.Assignments))
	}
	if up.Assignments[0].Column != "age" || up.Assignments[0].Value != "40" {
		t.Fatalf("unexpected first assignment: %+v", up.Assignments[0])
	}
	if up.Where == nil {
		t.Fatalf("expected WHERE clause")
	}
}

func TestParseUpdate_NoWhere(t *testing.T) {
	stmt, err := Parse("UPDATE users SET age = '0'")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if stmt.(*UpdateStmt).Where != nil {
		t.Fatalf("expected nil WHERE for unconditional update")
	}
}

func TestParseDelete(t *testing.T) {
	stmt, err := Parse("DELETE FROM users WHERE id = '1'")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	del := stmt.(*DeleteStmt)
	if del.TableName != "users" || del.Where == nil {
		t.Fatalf("unexpected delete statement: %+v", del)
	}

	stmt, err = Parse("DELETE FROM logs")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if stmt.(*DeleteStmt).Where != nil {
		t.Fatalf("expected nil WHERE for truncating delete")
	}
}

func TestParseSelect_Star(t *testing.T) {
	stmt, err := Parse("SELECT * FROM users")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sel, ok := stmt.(*SelectStmt)
	if !ok {
		t.Fatalf("expected *SelectStmt, got %T", stmt)
	}
	if len(sel.Projection) != 1 {
		t.Fatalf("expected 1 projection entry, got %d", len(sel.Projection))
	}
	if _, ok := sel.Projection[0].(*Star); !ok {
		t.Fatalf("expected *Star projection, got %T", sel.Projection[0])
	}
	if sel.TableName != "users" {
		t.Fatalf("expected table %q, got %q", "users", sel.TableName)
	}
}

func TestParseSelect_ColumnsAndAggregates(t *testing.T) {
	stmt, err := Parse("SELECT age, COUNT(*), SUM(age) FROM users GROUP BY age")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sel := stmt.(*SelectStmt)
	if len(sel.Projection) != 3 {
		t.Fatalf("expected 3 projection entries, got %d", len(sel.Projection))
	}
	if ref, ok := sel.Projection[0].(*ColumnRef); !ok || ref.Name != "age" {
		t.Fatalf("expected age column ref, got %+v", sel.Projection[0])
	}
	count, ok := sel.Projection[1].(*AggregateCall)
	if !ok || count.Func != AggCount || count.Arg != nil {
		t.Fatalf("expected COUNT(*), got %+v", sel.Projection[1])
	}
	sum, ok := sel.Projection[2].(*AggregateCall)
	if !ok || sum.Func != AggSum || sum.Arg == nil || sum.Arg.Name != "age" {
		t.Fatalf("expected SUM(age), got %+v", sel.Projection[2])
	}
	if len(sel.GroupBy) != 1 || sel.GroupBy[0].Name != "age" {
		t.Fatalf("expected GROUP BY age, got %+v", sel.GroupBy)
	}
}

func TestParseSelect_StarOnlyForCount(t *testing.T) {
	if _, err := Parse("SELECT SUM(*) FROM users"); err == nil {
		t.Fatalf("expected error for SUM(*)")
	}
}

func TestParseSelect_Joins(t *testing.T) {
	stmt, err := Parse("SELECT * FROM orders LEFT JOIN users ON users.id = orders.user_id CROSS JOIN tags")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sel := stmt.(*SelectStmt)
	if len(sel.Joins) != 2 {
		t.Fatalf("expected 2 joins, got %d", len(sel.Joins))
	}
	if sel.Joins[0].Kind != JoinLeft || sel.Joins[0].Table != "users" || sel.Joins[0].On == nil {
		t.Fatalf("unexpected first join: %+v", sel.Joins[0])
	}
	if sel.Joins[1].Kind != JoinCross || sel.Joins[1].On != nil {
		t.Fatalf("unexpected second join: %+v", sel.Joins[1])
	}

	on := sel.Joins[0].On.(*BinaryExpr)
	left := on.Left.(*ColumnRef)
	if left.Table != "users" || left.Name != "id" {
		t.Fatalf("expected users.id in ON, got %+v", left)
	}
}

func TestParseSelect_BareJoinIsInner(t *testing.T) {
	stmt, err := Parse("SELECT * FROM a JOIN b ON x = y")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sel := stmt.(*SelectStmt)
	if sel.Joins[0].Kind != JoinInner {
		t.Fatalf("expected INNER for bare JOIN, got %v", sel.Joins[0].Kind)
	}
}

func TestParseSelect_CrossJoinRejectsOn(t *testing.T) {
	if _, err := Parse("SELECT * FROM a CROSS JOIN b ON x = y"); err == nil {
		t.Fatalf("expected error for CROSS JOIN with ON")
	}
}

func TestParseSelect_InnerJoinRequiresOn(t *testing.T) {
	if _, err := Parse("SELECT * FROM a JOIN b"); err == nil {
		t.Fatalf("expected error for INNER JOIN without ON")
	}
}

func TestParseSelect_HavingRequiresGroupBy(t *testing.T) {
	if _, err := Parse("SELECT COUNT(*) FROM users HAVING COUNT(*) > 1"); err == nil {
		t.Fatalf("expected error for HAVING without GROUP BY")
	}
}

func TestParseSelect_OrderBy(t *testing.T) {
	stmt, err := Parse("SELECT * FROM users ORDER BY age DESC")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	sel := stmt.(*SelectStmt)
	if sel.Order == nil || sel.Order.Column.Name != "age" || !sel.Order.Desc {
		t.Fatalf("unexpected order by: %+v", sel.Order)
	}

	stmt, err = Parse("SELECT * FROM users ORDER BY age")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if stmt.(*SelectStmt).Order.Desc {
		t.Fatalf("expected ascending default")
	}
}

func TestParsePredicate_Precedence(t *testing.T) {
	stmt, err := Parse("SELECT * FROM t WHERE a = '1' OR b = '2' AND c = '3'")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	where := stmt.(*SelectStmt).Where.(*BinaryExpr)
	if where.Op != OpOr {
		t.Fatalf("expected OR at the top (AND binds tighter), got %v", where.Op)
	}
	right := where.Right.(*BinaryExpr)
	if right.Op != OpAnd {
		t.Fatalf("expected AND under OR, got %v", right.Op)
	}
}

func TestParsePredicate_Operators(t *testing.T) {
	ops := map[string]BinOp{
		"=": OpEq, "!=": OpNe, "<": OpLt, ">": OpGt, "<=": OpLe, ">=": OpGe,
	}
	for text, want := range ops {
		stmt, err := Parse("SELECT * FROM t WHERE a " + text + " '1'")
		if err != nil {
			t.Fatalf("Parse failed for %q: %v", text, err)
		}
		got := stmt.(*SelectStmt).Where.(*BinaryExpr).Op
		if got != want {
			t.Fatalf("operator %q: expected %v, got %v", text, want, got)
		}
	}
}

func TestParseUnknownStatement(t *testing.T) {
	_, err := Parse("EXPLAIN SELECT * FROM t")
	if !errors.Is(err, ErrUnknownStatement) {
		t.Fatalf("expected ErrUnknownStatement, got %v", err)
	}
}

func TestParseTrailingTokensRejected(t *testing.T) {
	_, err := Parse("DROP TABLE users; DROP TABLE users")
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Fatalf("expected ErrUnexpectedToken for trailing input, got %v", err)
	}
}
