package storage

import (
	"fmt"

	"github.com/osci-tools/anaconda-webui-harness/internal/messages"
)

// Paths on the installed system (visible under the installer's sysroot).
const (
	sysrootKeyfile      = "/mnt/sysroot/root/keyfile"
	sysrootUnlockScript = "/mnt/sysroot/root/add_keyfile.sh"
)

// unlockScript rewrites crypttab to use the keyfile and bakes the keyfile
// into the initramfs, so the installed system unlocks its LUKS volumes
// without prompting. zipl only exists on s390x.
const unlockScript = `
awk -v "KEY_FILE=/root/keyfile" '{$3=KEY_FILE; print $0}' /etc/crypttab > crypttab_mod
mv -Z crypttab_mod /etc/crypttab
chmod 0600 /etc/crypttab
kernel_file=` + "`grubby --default-kernel`" + `
kernel_version=` + "`rpm -qf $kernel_file --qf '%{VERSION}-%{RELEASE}.%{ARCH}'`" + `
initrd_file="/boot/initramfs-${kernel_version}.img"
dracut -f -I /root/keyfile $initrd_file $kernel_version
if [ -x /sbin/zipl ]; then
    /sbin/zipl
fi
`

// UnlockStorageOnBoot installs a keyfile on the target so the encrypted
// storage unlocks at boot. This is the one helper with side effects beyond
// the UI and the bus: it writes into the installed system and rebuilds its
// initramfs inside a chroot.
func (s *Storage) UnlockStorageOnBoot(password string) error {
	return s.steps.Run("unlock storage on boot", func() error {
		if err := s.machine.WriteFile(sysrootKeyfile, password, 0o400); err != nil {
			return fmt.Errorf(messages.StorageWriteKeyfileFmt, err)
		}
		if err := s.machine.WriteFile(sysrootUnlockScript, unlockScript, 0o644); err != nil {
			return fmt.Errorf(messages.StorageWriteScriptFmt, err)
		}
		if _, err := s.machine.Execute("chroot /mnt/sysroot bash /root/add_keyfile.sh"); err != nil {
			return fmt.Errorf(messages.StorageRunScriptFmt, err)
		}
		return nil
	})
}
